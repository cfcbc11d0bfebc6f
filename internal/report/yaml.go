package report

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/h3network/h3report/internal/model"
)

// YAMLWriter outputs the document outline in YAML format.
type YAMLWriter struct {
	baseWriter

	version string
	indent  int
}

// YAMLWriterOption configures a YAMLWriter.
type YAMLWriterOption func(*YAMLWriter)

// WithYAMLVersion sets the version recorded in the output.
func WithYAMLVersion(version string) YAMLWriterOption {
	return func(w *YAMLWriter) {
		w.version = version
	}
}

// WithYAMLIndent sets the number of spaces per nesting level.
func WithYAMLIndent(spaces int) YAMLWriterOption {
	return func(w *YAMLWriter) {
		w.indent = spaces
	}
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer, opts ...YAMLWriterOption) *YAMLWriter {
	w := &YAMLWriter{
		baseWriter: newBaseWriter(output),
		indent:     2,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document wrapped in an Outline.
func (w *YAMLWriter) Write(doc *model.Document) (int, error) {
	outline, err := NewOutline(doc, w.version)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(w.indent)
	if err := enc.Encode(outline); err != nil {
		return 0, fmt.Errorf("failed to encode outline: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("failed to encode outline: %w", err)
	}

	return w.output.Write(buf.Bytes())
}
