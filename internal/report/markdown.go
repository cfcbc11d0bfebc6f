package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/h3network/h3report/internal/markup"
	"github.com/h3network/h3report/internal/model"
)

// MarkdownWriter outputs the document outline in Markdown format.
// Headings map to their outline level, consecutive bullets become one
// list, tables keep their first row as the header, and page breaks become
// horizontal rules.
type MarkdownWriter struct {
	baseWriter

	// statistics appends an element summary after the outline.
	statistics bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithStatistics enables or disables the element summary section.
func WithStatistics(enabled bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.statistics = enabled
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		statistics: true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document in Markdown format.
func (w *MarkdownWriter) Write(doc *model.Document) (int, error) {
	md := markdown.NewMarkdown(w.output)

	var bullets []string
	flush := func() {
		if len(bullets) == 0 {
			return
		}
		md.BulletList(bullets...)
		md.PlainText("")
		bullets = nil
	}

	for i, e := range doc.Elements {
		if e.Kind != model.KindBullet {
			flush()
		}

		switch e.Kind {
		case model.KindHeading:
			text, err := inlineMarkdown(e.Markup)
			if err != nil {
				return 0, &model.LayoutError{Index: i, Kind: e.Kind, Err: err}
			}
			w.writeHeading(md, w.level(doc, e), text)
		case model.KindParagraph:
			text, err := inlineMarkdown(e.Markup)
			if err != nil {
				return 0, &model.LayoutError{Index: i, Kind: e.Kind, Err: err}
			}
			md.PlainText(text)
			md.PlainText("")
		case model.KindBullet:
			text, err := inlineMarkdown(e.Markup)
			if err != nil {
				return 0, &model.LayoutError{Index: i, Kind: e.Kind, Err: err}
			}
			bullets = append(bullets, text)
		case model.KindTable:
			w.writeTable(md, e.Table)
		case model.KindPageBreak:
			md.HorizontalRule()
			md.PlainText("")
		}
	}
	flush()

	if w.statistics {
		w.writeStatistics(md, doc)
	}

	return len(md.String()), md.Build()
}

// level returns the outline level of a heading element, 0 when its style
// is not a heading style.
func (w *MarkdownWriter) level(doc *model.Document, e model.Element) int {
	if doc.Styles == nil {
		return 0
	}
	st, ok := doc.Styles.Style(e.Style)
	if !ok {
		return 0
	}
	return st.Level
}

// writeHeading writes text at the given outline level. Level 0 headings
// are set as a bold line.
func (w *MarkdownWriter) writeHeading(md *markdown.Markdown, level int, text string) {
	switch level {
	case 1:
		md.H1(text)
	case 2:
		md.H2(text)
	case 3:
		md.H3(text)
	default:
		md.PlainText(markdown.Bold(text))
	}
	md.PlainText("")
}

// writeTable writes t with its first row as the header.
func (w *MarkdownWriter) writeTable(md *markdown.Markdown, t *model.Table) {
	if t == nil || len(t.Rows) == 0 {
		return
	}
	md.Table(markdown.TableSet{
		Header: t.Rows[0],
		Rows:   t.Rows[1:],
	})
	md.PlainText("")
}

// writeStatistics writes element counts as a table and a pie chart.
func (w *MarkdownWriter) writeStatistics(md *markdown.Markdown, doc *model.Document) {
	kinds := []model.Kind{
		model.KindHeading,
		model.KindParagraph,
		model.KindBullet,
		model.KindTable,
		model.KindSpacer,
		model.KindPageBreak,
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Element Distribution"),
		piechart.WithShowData(true),
	)

	rows := make([][]string, 0, len(kinds)+1)
	for _, k := range kinds {
		n := doc.Count(k)
		rows = append(rows, []string{k.String(), strconv.Itoa(n)})
		if n > 0 {
			chart.LabelAndIntValue(k.String(), uint64(n))
		}
	}
	rows = append(rows, []string{markdown.Bold("total"), markdown.Bold(strconv.Itoa(len(doc.Elements)))})

	md.H2("Document Statistics")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Element", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(doc.Elements) > 0 {
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
		md.PlainText("")
	}

	if fp, err := doc.Fingerprint(); err == nil {
		md.Note(fmt.Sprintf("Fingerprint: `%s`", fp))
		md.PlainText("")
	}
}

// inlineMarkdown converts inline markup to Markdown emphasis.
func inlineMarkdown(s string) (string, error) {
	runs, err := markup.Parse(s)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, r := range runs {
		text := r.Text
		if r.Italic {
			text = markdown.Italic(text)
		}
		if r.Bold {
			text = markdown.Bold(text)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
