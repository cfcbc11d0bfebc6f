package report

import (
	"io"

	"github.com/h3network/h3report/internal/model"
)

// Writer defines the interface for document output.
type Writer interface {
	// Write outputs the document to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(doc *model.Document) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// Unlike io.MultiWriter it fans out documents, not bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the document to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(doc *model.Document) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(doc)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for document writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// Outline wraps a document with metadata for the structured writers.
type Outline struct {
	// Version is the h3report version that produced the outline.
	Version string `json:"version" yaml:"version"`

	// Fingerprint identifies the element sequence; see Document.Fingerprint.
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`

	Document *model.Document `json:"document" yaml:"document"`
}

// NewOutline creates an Outline for doc.
func NewOutline(doc *model.Document, version string) (*Outline, error) {
	fp, err := doc.Fingerprint()
	if err != nil {
		return nil, err
	}
	return &Outline{
		Version:     version,
		Fingerprint: fp,
		Document:    doc,
	}, nil
}
