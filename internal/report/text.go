package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/h3network/h3report/internal/model"
)

// TextWriter outputs human-readable plain text for terminal display.
type TextWriter struct {
	baseWriter

	// width is the length of section rules.
	width int

	// showSpacing prints spacers as blank lines.
	showSpacing bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithRuleWidth sets the length of the header and section rules.
func WithRuleWidth(width int) TextWriterOption {
	return func(w *TextWriter) {
		if width > 0 {
			w.width = width
		}
	}
}

// WithSpacing prints each spacer element as a blank line.
func WithSpacing(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showSpacing = show
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		width:      70,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document as plain text.
func (w *TextWriter) Write(doc *model.Document) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, doc)

	for i, e := range doc.Elements {
		if err := w.writeElement(&sb, doc, e); err != nil {
			return 0, &model.LayoutError{Index: i, Kind: e.Kind, Err: err}
		}
	}

	w.writeFooter(&sb, doc)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the banner with the document metadata.
func (w *TextWriter) writeHeader(sb *strings.Builder, doc *model.Document) {
	sb.WriteString(strings.Repeat("=", w.width))
	sb.WriteString("\n")
	sb.WriteString(center(strings.ToUpper(doc.Title), w.width))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", w.width))
	sb.WriteString("\n\n")

	if doc.Author != "" {
		sb.WriteString(fmt.Sprintf("Author:  %s\n", doc.Author))
	}
	sb.WriteString(fmt.Sprintf("Output:  %s\n", doc.Output))
	sb.WriteString(fmt.Sprintf("Page:    %s (%.0fx%.0fpt)\n", doc.Page.Size, doc.Page.Width, doc.Page.Height))
	sb.WriteString("\n")
}

func (w *TextWriter) writeElement(sb *strings.Builder, doc *model.Document, e model.Element) error {
	switch e.Kind {
	case model.KindSpacer:
		if w.showSpacing {
			sb.WriteString("\n")
		}
		return nil
	case model.KindPageBreak:
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("- ", w.width/2))
		sb.WriteString("\n\n")
		return nil
	case model.KindTable:
		return w.writeTable(sb, e.Table)
	}

	text, err := e.Text()
	if err != nil {
		return err
	}

	indent := ""
	if doc.Styles == nil {
		return model.ErrUnknownStyle
	}
	if st, ok := doc.Styles.Style(e.Style); ok {
		if st.Level == 3 {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat("-", w.width))
			sb.WriteString("\n")
			sb.WriteString(text)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat("-", w.width))
			sb.WriteString("\n\n")
			return nil
		}
		if st.LeftIndent > 0 {
			indent = "  "
		}
	}

	sb.WriteString(indent)
	sb.WriteString(text)
	sb.WriteString("\n")
	return nil
}

// writeTable writes t as a bordered ASCII table.
func (w *TextWriter) writeTable(sb *strings.Builder, t *model.Table) error {
	if t == nil || len(t.Rows) == 0 {
		return model.ErrEmptyTable
	}

	table := tablewriter.NewWriter(sb)
	table.Header(t.Rows[0])
	if err := table.Bulk(t.Rows[1:]); err != nil {
		return fmt.Errorf("failed to add table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	sb.WriteString("\n")
	return nil
}

// writeFooter writes the closing rule.
func (w *TextWriter) writeFooter(sb *strings.Builder, doc *model.Document) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", w.width))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%d elements\n", len(doc.Elements)))
	sb.WriteString(strings.Repeat("=", w.width))
	sb.WriteString("\n")
}

// center pads s on the left so it sits in the middle of width columns.
func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
