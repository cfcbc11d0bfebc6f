package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/h3network/h3report/internal/config"
	"github.com/h3network/h3report/internal/content"
	"github.com/h3network/h3report/internal/report"
	"github.com/h3network/h3report/internal/style"
)

// Outline formats accepted by --format.
const (
	formatText     = "text"
	formatJSON     = "json"
	formatYAML     = "yaml"
	formatMarkdown = "markdown"
)

var outlineFormats = []string{formatText, formatJSON, formatYAML, formatMarkdown}

// NewOutlineCmd creates the outline command.
func NewOutlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Print the report's element sequence without rendering",
		Long: `Outline builds the report and prints its elements instead of writing
the PDF. No file is created.

Examples:
  # Plain text for the terminal
  h3report outline

  # Full element tree for tooling
  h3report outline --format json

  # Markdown with element statistics
  h3report outline --format markdown`,
		Args: cobra.NoArgs,
		RunE: runOutlineCmd,
	}

	cmd.Flags().StringP("format", "f", formatText,
		"Output format ("+strings.Join(outlineFormats, ", ")+")")

	return cmd
}

func runOutlineCmd(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	w, err := newOutlineWriter(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	doc := content.Build(style.NewSheet(), config.DefaultPage(), config.DefaultOutputPath)
	logger.Debug("document built", "elements", len(doc.Elements), "format", format)

	if err := doc.Validate(); err != nil {
		return err
	}
	if _, err := w.Write(doc); err != nil {
		return fmt.Errorf("failed to write outline: %w", err)
	}
	return nil
}

// newOutlineWriter returns the writer for format.
func newOutlineWriter(out io.Writer, format string) (report.Writer, error) {
	switch strings.ToLower(format) {
	case formatText:
		return report.NewTextWriter(out), nil
	case formatJSON:
		return report.NewJSONWriter(out, report.WithPrettyPrint(), report.WithJSONVersion(getVersion())), nil
	case formatYAML:
		return report.NewYAMLWriter(out, report.WithYAMLVersion(getVersion())), nil
	case formatMarkdown:
		return report.NewMarkdownWriter(out), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)",
			errUnknownFormat, format, strings.Join(outlineFormats, ", "))
	}
}
