package render

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/h3network/h3report/internal/model"
	"github.com/h3network/h3report/internal/report"
)

// DefaultFileMode is the permission of a rendered file.
const DefaultFileMode fs.FileMode = 0o644

// Invoker renders documents to files.
type Invoker struct {
	pdfOptions []report.PDFWriterOption
	fileMode   fs.FileMode
	logger     *slog.Logger
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithPDFOptions passes options through to the PDF writer.
func WithPDFOptions(opts ...report.PDFWriterOption) Option {
	return func(inv *Invoker) {
		inv.pdfOptions = append(inv.pdfOptions, opts...)
	}
}

// WithFileMode sets the permission of the rendered file.
func WithFileMode(mode fs.FileMode) Option {
	return func(inv *Invoker) {
		inv.fileMode = mode
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(inv *Invoker) {
		inv.logger = logger
	}
}

// NewInvoker creates an Invoker.
func NewInvoker(opts ...Option) *Invoker {
	inv := &Invoker{
		fileMode: DefaultFileMode,
	}

	for _, opt := range opts {
		opt(inv)
	}

	if inv.logger == nil {
		inv.logger = slog.Default()
	}

	return inv
}

// Render lays out doc and writes it to doc.Output, replacing any existing
// file. On failure the destination is left untouched and the temporary file
// is removed.
func (inv *Invoker) Render(ctx context.Context, doc *model.Document) (*model.RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	dest, err := filepath.Abs(doc.Output)
	if err != nil {
		return nil, &model.IOError{Op: "resolve", Path: doc.Output, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return nil, &model.IOError{Op: "create", Path: dest, Err: err}
	}
	tmpPath := tmp.Name()
	inv.logger.Debug("rendering document", "temp", tmpPath, "elements", len(doc.Elements))

	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tmp.Close()
		if err := os.Remove(tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			inv.logger.Warn("failed to remove temporary file", "path", tmpPath, "error", err)
		}
	}()

	w := report.NewPDFWriter(tmp, inv.pdfOptions...)
	n, err := w.Write(doc)
	if err != nil {
		var layoutErr *model.LayoutError
		if errors.As(err, &layoutErr) {
			return nil, err
		}
		return nil, &model.IOError{Op: "write", Path: tmpPath, Err: err}
	}

	if err := tmp.Close(); err != nil {
		return nil, &model.IOError{Op: "close", Path: tmpPath, Err: err}
	}
	if err := os.Chmod(tmpPath, inv.fileMode); err != nil {
		return nil, &model.IOError{Op: "chmod", Path: tmpPath, Err: err}
	}

	// Last chance to abandon the render before the destination changes.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return nil, &model.IOError{Op: "rename", Path: dest, Err: err}
	}
	committed = true

	inv.logger.Debug("document rendered", "path", dest, "pages", w.Pages(), "bytes", n)

	return &model.RenderResult{
		Path:  dest,
		Pages: w.Pages(),
		Bytes: int64(n),
	}, nil
}
