package report

import (
	"bytes"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/h3network/h3report/internal/content"
	"github.com/h3network/h3report/internal/markup"
	"github.com/h3network/h3report/internal/model"
	"github.com/h3network/h3report/internal/style"
)

var mediaBoxLetter = regexp.MustCompile(`/MediaBox \[0 0 612\.00 792\.00\]`)

func writePDF(t *testing.T, doc *model.Document) ([]byte, *PDFWriter) {
	t.Helper()

	var buf bytes.Buffer
	w := NewPDFWriter(&buf,
		WithCompression(false),
		WithCreationDate(time.Date(2025, time.November, 6, 12, 0, 0, 0, time.UTC)),
	)
	n, err := w.Write(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, buffer holds %d", n, buf.Len())
	}
	return buf.Bytes(), w
}

// TestPDFWriter tests the layout engine binding.
func TestPDFWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes a letter-size PDF", func(t *testing.T) {
		t.Parallel()

		out, w := writePDF(t, createTestDocument())
		if !bytes.HasPrefix(out, []byte("%PDF-1.")) {
			t.Errorf("missing PDF header: %q", out[:min(len(out), 16)])
		}
		if !mediaBoxLetter.Match(out) {
			t.Error("expected letter MediaBox")
		}
		if w.Pages() != 2 {
			t.Errorf("pages = %d, want 2", w.Pages())
		}
	})

	t.Run("sets text", func(t *testing.T) {
		t.Parallel()

		out, _ := writePDF(t, createTestDocument())
		for _, want := range []string{"(Hello PDF)Tj", "(Phase 1)Tj", "(The End)Tj"} {
			if !bytes.Contains(out, []byte(want)) {
				t.Errorf("expected %q in content stream", want)
			}
		}
	})

	t.Run("drops glyphs outside the core font encoding", func(t *testing.T) {
		t.Parallel()

		out, _ := writePDF(t, createTestDocument())
		if !bytes.Contains(out, []byte("(Executive Summary)Tj")) {
			t.Error("expected section header without emoji")
		}
		if !bytes.Contains(out, []byte("(Complete)Tj")) {
			t.Error("expected table cell without emoji")
		}
	})

	t.Run("encodes bullet marker", func(t *testing.T) {
		t.Parallel()

		out, _ := writePDF(t, createTestDocument())
		if !bytes.Contains(out, []byte("(\x95 One)Tj")) {
			t.Error("expected Windows-1252 bullet before item")
		}
	})

	t.Run("records metadata", func(t *testing.T) {
		t.Parallel()

		out, _ := writePDF(t, createTestDocument())
		if !bytes.Contains(out, []byte("/Creator")) || !bytes.Contains(out, []byte("/Title")) {
			t.Error("expected document info dictionary")
		}
	})
}

func TestPDFWriterPageBreaks(t *testing.T) {
	t.Parallel()

	t.Run("leading page break adds no blank page", func(t *testing.T) {
		t.Parallel()

		doc := createTestDocument()
		doc.Elements = append([]model.Element{model.PageBreak()}, doc.Elements...)
		_, w := writePDF(t, doc)
		if w.Pages() != 2 {
			t.Errorf("pages = %d, want 2", w.Pages())
		}
	})

	t.Run("empty document has one page", func(t *testing.T) {
		t.Parallel()

		doc := createTestDocument()
		doc.Elements = nil
		_, w := writePDF(t, doc)
		if w.Pages() != 1 {
			t.Errorf("pages = %d, want 1", w.Pages())
		}
	})

	t.Run("long content flows onto new pages", func(t *testing.T) {
		t.Parallel()

		doc := createTestDocument()
		doc.Elements = nil
		for range 200 {
			doc.Append(model.Bullet(style.Bullet, "Line of text"))
		}
		_, w := writePDF(t, doc)
		if w.Pages() < 2 {
			t.Errorf("pages = %d, want at least 2", w.Pages())
		}
	})
}

func TestPDFWriterErrors(t *testing.T) {
	t.Parallel()

	t.Run("ragged table", func(t *testing.T) {
		t.Parallel()

		doc := createTestDocument()
		doc.Elements[7].Table.Rows[1] = []string{"only one"}

		var buf bytes.Buffer
		_, err := NewPDFWriter(&buf).Write(doc)
		var layoutErr *model.LayoutError
		if !errors.As(err, &layoutErr) {
			t.Fatalf("expected *model.LayoutError, got %v", err)
		}
		if !errors.Is(err, model.ErrRaggedTable) || layoutErr.Index != 7 {
			t.Errorf("got %v at index %d", err, layoutErr.Index)
		}
		if buf.Len() != 0 {
			t.Error("nothing should be written on a layout error")
		}
	})

	t.Run("row taller than the frame", func(t *testing.T) {
		t.Parallel()

		doc := createTestDocument()
		tbl := doc.Elements[7].Table
		tbl.Commands = append(tbl.Commands,
			model.BottomPadding(model.Cell{Col: 0, Row: 1}, model.Cell{Col: 0, Row: 1}, 1000))

		var buf bytes.Buffer
		_, err := NewPDFWriter(&buf).Write(doc)
		if !errors.Is(err, model.ErrElementTooTall) {
			t.Errorf("expected ErrElementTooTall, got %v", err)
		}
		if buf.Len() != 0 {
			t.Error("nothing should be written on a layout error")
		}
	})
}

func TestLineHeight(t *testing.T) {
	t.Parallel()

	sheet := style.NewSheet()
	tests := []struct {
		name string
		want float64
	}{
		{style.Title, 24},
		{style.Body, 12},
		{style.Section, 14.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := lineHeight(sheet.MustStyle(tt.name)); got != tt.want {
				t.Errorf("lineHeight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFontStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		font style.Font
		want string
	}{
		{style.Helvetica, ""},
		{style.HelveticaBold, "B"},
		{style.Font{Family: "Helvetica", Italic: true}, "I"},
		{style.HelveticaBoldOblique, "BI"},
	}
	for _, tt := range tests {
		if got := fontStyle(tt.font); got != tt.want {
			t.Errorf("fontStyle(%+v) = %q, want %q", tt.font, got, tt.want)
		}
	}
}

func TestAlignStr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		align style.Alignment
		text  string
		cell  string
	}{
		{style.AlignLeft, "L", "L"},
		{style.AlignCenter, "C", "C"},
		{style.AlignRight, "R", "R"},
		{style.AlignJustify, "J", "L"},
	}
	for _, tt := range tests {
		if got := alignStr(tt.align); got != tt.text {
			t.Errorf("alignStr(%s) = %q, want %q", tt.align, got, tt.text)
		}
		if got := cellAlignStr(tt.align); got != tt.cell {
			t.Errorf("cellAlignStr(%s) = %q, want %q", tt.align, got, tt.cell)
		}
	}
}

// reportPages is the page count of the full report on US Letter.
const reportPages = 4

// shownText matches a text-showing operator in an uncompressed content
// stream: its position and its string operand.
var shownText = regexp.MustCompile(`BT (-?[0-9.]+) (-?[0-9.]+) Td \(((?:[^\\)]|\\.)*)\)Tj`)

var unescapeString = strings.NewReplacer(`\\`, `\`, `\(`, `(`, `\)`, `)`, `\r`, "\r")

// shownItem is one string shown on a page, at its text origin.
type shownItem struct {
	x, y float64
	text string
}

func shownItems(t *testing.T, out []byte) []shownItem {
	t.Helper()

	var items []shownItem
	for _, m := range shownText.FindAllSubmatch(out, -1) {
		x, err := strconv.ParseFloat(string(m[1]), 64)
		if err != nil {
			t.Fatalf("bad x %q: %v", m[1], err)
		}
		y, err := strconv.ParseFloat(string(m[2]), 64)
		if err != nil {
			t.Fatalf("bad y %q: %v", m[2], err)
		}
		items = append(items, shownItem{x: x, y: y, text: unescapeString.Replace(string(m[3]))})
	}
	return items
}

// withoutSpaces drops ASCII whitespace byte by byte; the text is
// Windows-1252, not UTF-8.
func withoutSpaces(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// reportLiterals returns every text element and every table cell of doc in
// order, encoded for the core fonts. Pictographs have no Windows-1252 code
// point and are absent from the page, so they are absent here too.
func reportLiterals(t *testing.T, doc *model.Document) []string {
	t.Helper()

	var literals []string
	add := func(s string) {
		if enc := withoutSpaces(encodeText(s)); enc != "" {
			literals = append(literals, enc)
		}
	}
	for _, e := range doc.Elements {
		switch {
		case e.IsText():
			text, err := e.Text()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			add(text)
		case e.Kind == model.KindTable:
			for _, row := range e.Table.Rows {
				for _, cell := range row {
					add(cell)
				}
			}
		}
	}
	return literals
}

// TestPDFWriterFullReport checks the rendered report: every literal shows
// up in the content streams in document order, and the page count is fixed.
// Line wrapping removes the space at each break, so spaces are ignored when
// comparing.
func TestPDFWriterFullReport(t *testing.T) {
	t.Parallel()

	page := createTestDocument().Page
	render := func() ([]byte, int) {
		out, w := writePDF(t, content.Build(style.NewSheet(), page, content.OutputName))
		return out, w.Pages()
	}

	first, pages := render()
	second, pagesAgain := render()

	if pages != reportPages {
		t.Errorf("pages = %d, want %d", pages, reportPages)
	}
	if pagesAgain != pages {
		t.Errorf("page count changed between renders: %d then %d", pages, pagesAgain)
	}

	var sb strings.Builder
	for _, item := range shownItems(t, first) {
		sb.WriteString(item.text)
	}
	stream := withoutSpaces(sb.String())

	var again strings.Builder
	for _, item := range shownItems(t, second) {
		again.WriteString(item.text)
	}
	if withoutSpaces(again.String()) != stream {
		t.Error("text stream changed between renders")
	}

	literals := reportLiterals(t, content.Build(style.NewSheet(), page, content.OutputName))
	if len(literals) < 90 {
		t.Fatalf("expected the full report, got %d literals", len(literals))
	}

	pos := 0
	for i, lit := range literals {
		idx := strings.Index(stream[pos:], lit)
		if idx < 0 {
			t.Fatalf("literal %d %q missing or out of order", i, lit)
		}
		pos += idx + len(lit)
	}

	for _, want := range []string{"(H3 Network Platform)Tj", "(Production Readiness Checklist)Tj"} {
		if !bytes.Contains(first, []byte(want)) {
			t.Errorf("expected %q in content stream", want)
		}
	}
}

// TestPDFWriterJustifiesMixedParagraph checks that a justified paragraph
// with a bold label fills the frame on every line but the last.
func TestPDFWriterJustifiesMixedParagraph(t *testing.T) {
	t.Parallel()

	doc := createTestDocument()
	doc.Elements = nil
	doc.Append(model.RichParagraph(style.Body,
		"<b>Lead:</b> "+strings.Repeat("alpha beta gamma delta epsilon zeta ", 15)+"omega"))

	out, _ := writePDF(t, doc)
	items := shownItems(t, out)
	if len(items) == 0 {
		t.Fatal("no text shown")
	}
	if items[0].text != "Lead:" {
		t.Errorf("first word = %q, want the bold label", items[0].text)
	}

	var lines [][]shownItem
	for _, item := range items {
		if n := len(lines); n > 0 && lines[n-1][0].y == item.y {
			lines[n-1] = append(lines[n-1], item)
			continue
		}
		lines = append(lines, []shownItem{item})
	}
	if len(lines) < 3 {
		t.Fatalf("expected the paragraph to wrap onto at least 3 lines, got %d", len(lines))
	}

	metrics := fpdf.New("P", "pt", "Letter", "")
	metrics.SetFont("Helvetica", "", 10)
	left := doc.Page.Margins.Left
	right := doc.Page.Width - doc.Page.Margins.Right
	space := metrics.GetStringWidth(" ")

	for i, line := range lines {
		if math.Abs(line[0].x-left) > 0.01 {
			t.Errorf("line %d starts at %.2f, want %.2f", i, line[0].x, left)
		}
		lastWord := line[len(line)-1]
		end := lastWord.x + metrics.GetStringWidth(lastWord.text)

		if i < len(lines)-1 {
			if math.Abs(end-right) > 0.02 {
				t.Errorf("line %d ends at %.2f, want %.2f", i, end, right)
			}
			continue
		}
		if len(line) > 1 {
			prev := line[len(line)-2]
			gap := lastWord.x - (prev.x + metrics.GetStringWidth(prev.text))
			if math.Abs(gap-space) > 0.02 {
				t.Errorf("last line gap = %.2f, want a plain space %.2f", gap, space)
			}
		}
	}

	if lines[len(lines)-1][len(lines[len(lines)-1])-1].text != "omega" {
		t.Error("expected the paragraph to end with its last word")
	}
}

// describeWords renders words for comparison, bold pieces in asterisks.
func describeWords(words []word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		var sb strings.Builder
		for _, p := range w.pieces {
			if p.Bold {
				sb.WriteString("*" + p.Text + "*")
				continue
			}
			sb.WriteString(p.Text)
		}
		out[i] = sb.String()
	}
	return out
}

func TestSplitWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		runs []markup.Run
		want []string
	}{
		{
			name: "bold label",
			runs: []markup.Run{{Text: "Key Achievement:", Bold: true}, {Text: " Complete it"}},
			want: []string{"*Key*", "*Achievement:*", "Complete", "it"},
		},
		{
			name: "emphasis change inside a word",
			runs: []markup.Run{{Text: "pre", Bold: true}, {Text: "fix next"}},
			want: []string{"*pre*fix", "next"},
		},
		{
			name: "repeated spaces",
			runs: []markup.Run{{Text: "a  b "}},
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := describeWords(splitWords(tt.runs))
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("splitWords = %q, want %q", got, tt.want)
			}
		})
	}
}

func widths(ws ...float64) []word {
	words := make([]word, len(ws))
	for i, w := range ws {
		words[i] = word{width: w}
	}
	return words
}

func TestBreakLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []word
		want  []int
	}{
		{name: "wraps", words: widths(4, 4, 4), want: []int{2, 1}},
		{name: "exact fit", words: widths(5, 4), want: []int{2}},
		{name: "oversized word alone", words: widths(12, 3), want: []int{1, 1}},
		{name: "empty", words: nil, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lines := breakLines(tt.words, 1, 10)
			got := make([]int, len(lines))
			for i, line := range lines {
				got[i] = len(line)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("line sizes = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line sizes = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestPlaceLine(t *testing.T) {
	t.Parallel()

	line := widths(2, 3, 1)
	tests := []struct {
		name      string
		line      []word
		align     style.Alignment
		last      bool
		wantStart float64
		wantGap   float64
	}{
		{name: "left", line: line, align: style.AlignLeft, wantStart: 0, wantGap: 1},
		{name: "center", line: line, align: style.AlignCenter, wantStart: 6, wantGap: 1},
		{name: "right", line: line, align: style.AlignRight, wantStart: 12, wantGap: 1},
		{name: "justify stretches gaps", line: line, align: style.AlignJustify, wantStart: 0, wantGap: 7},
		{name: "justify last line", line: line, align: style.AlignJustify, last: true, wantStart: 0, wantGap: 1},
		{name: "justify single word", line: widths(5), align: style.AlignJustify, wantStart: 0, wantGap: 1},
		{name: "center overflow", line: widths(15, 10), align: style.AlignCenter, wantStart: 0, wantGap: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, gap := placeLine(tt.line, 1, 20, tt.align, tt.last)
			if start != tt.wantStart || gap != tt.wantGap {
				t.Errorf("placeLine = (%v, %v), want (%v, %v)", start, gap, tt.wantStart, tt.wantGap)
			}
		})
	}
}
