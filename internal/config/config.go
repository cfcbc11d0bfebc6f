package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/h3network/h3report/internal/content"
	"github.com/h3network/h3report/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "h3report"

	// DefaultOutputPath is the report file, relative to the working
	// directory.
	DefaultOutputPath = content.OutputName

	// DefaultPageSize names US Letter.
	DefaultPageSize = "Letter"

	// LetterWidth and LetterHeight are the US Letter dimensions in points.
	LetterWidth  = 8.5 * model.Inch
	LetterHeight = 11 * model.Inch

	// DefaultSideMargin is used for the top, left and right margins.
	DefaultSideMargin = 0.75 * model.Inch

	// DefaultBottomMargin is the bottom margin, a quarter inch.
	DefaultBottomMargin = 0.25 * model.Inch

	// DefaultHistoryLimit is how many renders the history command lists.
	DefaultHistoryLimit = 20
)

// Config holds all configuration options for a report run.
// It is built from defaults and the CLI's persistent flags and passed down
// explicitly rather than kept in global state.
type Config struct {
	// OutputPath is where the PDF is written. Existing files are replaced.
	OutputPath string

	// Page is the page geometry of the report.
	Page model.PageSetup

	// Compression enables PDF stream compression.
	Compression bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// DBDir is the directory of the render history database.
	// Defaults to XDG data directory (~/.local/share/h3report on Linux).
	DBDir string

	// SaveHistory records each successful render in the database.
	SaveHistory bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputPath:  DefaultOutputPath,
		Page:        DefaultPage(),
		Compression: true,
		DBDir:       XDGDataDir(),
		SaveHistory: true,
	}
}

// DefaultPage returns US Letter with the report margins.
func DefaultPage() model.PageSetup {
	return model.PageSetup{
		Size:   DefaultPageSize,
		Width:  LetterWidth,
		Height: LetterHeight,
		Margins: model.Margins{
			Top:    DefaultSideMargin,
			Left:   DefaultSideMargin,
			Right:  DefaultSideMargin,
			Bottom: DefaultBottomMargin,
		},
	}
}

// XDGDataDir returns the XDG data directory for h3report.
// On Linux: ~/.local/share/h3report
// On macOS: ~/Library/Application Support/h3report
// On Windows: %LOCALAPPDATA%\h3report
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the sentinel errors.
func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return ErrNoOutput
	}

	if c.Page.Width <= 0 || c.Page.Height <= 0 {
		return ErrInvalidPageSize
	}

	m := c.Page.Margins
	if m.Top < 0 || m.Left < 0 || m.Right < 0 || m.Bottom < 0 {
		return ErrInvalidMargins
	}
	if c.Page.FrameWidth() <= 0 || c.Page.FrameHeight() <= 0 {
		return ErrInvalidMargins
	}

	if c.SaveHistory && c.DBDir == "" {
		return ErrNoHistoryDir
	}

	return nil
}
