package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/h3network/h3report/internal/markup"
	"github.com/h3network/h3report/internal/model"
	"github.com/h3network/h3report/internal/style"
)

// PDFWriter lays a document out on pages and writes it as PDF.
//
// Layout is a single frame per page bounded by the document margins.
// Elements flow top to bottom; paragraphs break across pages, tables break
// between rows, and vertical space owed at the top of a page is dropped.
// Paragraphs mixing bold and regular text are set word by word and keep
// their alignment. Text is set in the PDF core fonts, so glyphs outside
// Windows-1252 (emoji in particular) are omitted from the page.
type PDFWriter struct {
	baseWriter

	// compress enables stream compression.
	compress bool

	// created is written as the creation date when not zero.
	created time.Time

	// creator is the producing application recorded in the metadata.
	creator string

	// pages is the page count of the last document written.
	pages int
}

// PDFWriterOption configures a PDFWriter.
type PDFWriterOption func(*PDFWriter)

// WithCompression enables or disables content stream compression.
func WithCompression(compress bool) PDFWriterOption {
	return func(w *PDFWriter) {
		w.compress = compress
	}
}

// WithCreationDate fixes the creation date recorded in the file.
func WithCreationDate(t time.Time) PDFWriterOption {
	return func(w *PDFWriter) {
		w.created = t
	}
}

// WithCreator sets the creator recorded in the file metadata.
func WithCreator(creator string) PDFWriterOption {
	return func(w *PDFWriter) {
		w.creator = creator
	}
}

// NewPDFWriter creates a PDFWriter that outputs to the given writer.
func NewPDFWriter(output io.Writer, opts ...PDFWriterOption) *PDFWriter {
	w := &PDFWriter{
		baseWriter: newBaseWriter(output),
		compress:   true,
		creator:    "h3report",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Pages returns the number of pages of the last document written.
func (w *PDFWriter) Pages() int {
	return w.pages
}

// Write lays out doc and writes the PDF. Structural problems and elements
// that cannot be placed are returned as *model.LayoutError; nothing is
// written to the output in that case.
func (w *PDFWriter) Write(doc *model.Document) (int, error) {
	w.pages = 0

	if err := doc.Validate(); err != nil {
		return 0, err
	}

	pdf := w.newPDF(doc)
	l := &layout{
		pdf:   pdf,
		sheet: doc.Styles,
		page:  doc.Page,
		fresh: true,
	}

	for i, e := range doc.Elements {
		if err := l.place(e); err != nil {
			return 0, &model.LayoutError{Index: i, Kind: e.Kind, Err: err}
		}
		if pdf.Err() {
			return 0, &model.LayoutError{Index: i, Kind: e.Kind, Err: pdf.Error()}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return 0, &model.LayoutError{Index: -1, Err: fmt.Errorf("failed to serialize PDF: %w", err)}
	}
	w.pages = pdf.PageCount()

	return w.output.Write(buf.Bytes())
}

// newPDF creates the engine with the document's geometry and metadata and
// opens the first page.
func (w *PDFWriter) newPDF(doc *model.Document) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: doc.Page.Width, Ht: doc.Page.Height},
	})

	m := doc.Page.Margins
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(true, m.Bottom)
	pdf.SetCellMargin(0)
	pdf.SetCompression(w.compress)
	if !w.created.IsZero() {
		pdf.SetCreationDate(w.created)
	}

	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetCreator(w.creator, true)

	pdf.AddPage()
	return pdf
}

// layout tracks the flow position while elements are placed.
type layout struct {
	pdf   *fpdf.Fpdf
	sheet *style.Sheet
	page  model.PageSetup

	// pending is vertical space owed before the next element.
	pending float64

	// fresh is true while nothing has been drawn on the current page.
	fresh bool
}

// limit is the lowest y a line may reach.
func (l *layout) limit() float64 {
	return l.page.Height - l.page.Margins.Bottom
}

func (l *layout) newPage() {
	l.pdf.AddPage()
	l.pending = 0
	l.fresh = true
}

// advance moves down by the pending space plus before. Space is dropped at
// the top of a page, and space that reaches the bottom starts a new page.
func (l *layout) advance(before float64) {
	space := l.pending + before
	l.pending = 0
	if space <= 0 || l.fresh {
		return
	}
	y := l.pdf.GetY() + space
	if y >= l.limit() {
		l.newPage()
		return
	}
	l.pdf.SetY(y)
}

func (l *layout) place(e model.Element) error {
	switch e.Kind {
	case model.KindSpacer:
		l.pending += e.Height
		return nil
	case model.KindPageBreak:
		if !l.fresh {
			l.newPage()
		}
		l.pending = 0
		return nil
	case model.KindTable:
		return l.table(e.Table)
	default:
		return l.text(e)
	}
}

func (l *layout) text(e model.Element) error {
	st, ok := l.sheet.Style(e.Style)
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrUnknownStyle, e.Style)
	}
	runs, err := e.Runs()
	if err != nil {
		return err
	}
	runs = encodeRuns(runs)

	l.advance(st.SpaceBefore)
	defer func() { l.pending = st.SpaceAfter }()
	if len(runs) == 0 {
		return nil
	}

	lh := lineHeight(st)
	x := l.page.Margins.Left + st.LeftIndent
	width := l.page.FrameWidth() - st.LeftIndent
	l.pdf.SetTextColor(st.Color.RGB())

	if uniform(runs) {
		l.setFont(st.Font, runs[0], st.Size)
		l.pdf.SetX(x)
		l.pdf.MultiCell(width, lh, runs[0].Text, "", alignStr(st.Align), false)
		l.fresh = false
		return nil
	}

	l.setWords(runs, st, x, width, lh)
	l.fresh = false
	return nil
}

// piece is the part of a word set in one font.
type piece struct {
	markup.Run
	width float64
}

// word is text between spaces. It has more than one piece when emphasis
// changes inside it.
type word struct {
	pieces []piece
	width  float64
}

// splitWords breaks runs into words at spaces, keeping the emphasis of
// every piece.
func splitWords(runs []markup.Run) []word {
	var (
		words []word
		cur   word
	)
	flush := func() {
		if len(cur.pieces) > 0 {
			words = append(words, cur)
			cur = word{}
		}
	}
	for _, r := range runs {
		for i, part := range strings.Split(r.Text, " ") {
			if i > 0 {
				flush()
			}
			if part == "" {
				continue
			}
			cur.pieces = append(cur.pieces, piece{Run: markup.Run{Text: part, Bold: r.Bold, Italic: r.Italic}})
		}
	}
	flush()
	return words
}

// breakLines fills lines greedily. A word wider than the frame gets a
// line of its own.
func breakLines(words []word, space, width float64) [][]word {
	var (
		lines [][]word
		line  []word
		used  float64
	)
	for _, w := range words {
		if len(line) > 0 && used+space+w.width > width+fitTolerance {
			lines = append(lines, line)
			line, used = nil, 0
		}
		if len(line) > 0 {
			used += space
		}
		used += w.width
		line = append(line, w)
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// fitTolerance absorbs rounding in measured widths.
const fitTolerance = 1e-6

// placeLine returns the offset of the first word from the frame's left
// edge and the gap between words. Justified lines stretch the gaps to the
// full width, except the last line of a paragraph and single-word lines.
func placeLine(line []word, space, width float64, align style.Alignment, last bool) (start, gap float64) {
	var words float64
	for _, w := range line {
		words += w.width
	}
	gaps := float64(len(line) - 1)
	natural := words + space*gaps

	switch align {
	case style.AlignCenter:
		return max((width-natural)/2, 0), space
	case style.AlignRight:
		return max(width-natural, 0), space
	case style.AlignJustify:
		if !last && gaps > 0 && natural < width {
			return 0, (width - words) / gaps
		}
	}
	return 0, space
}

// measure sets the width of every piece and word and returns the width of
// a space in the style's font.
func (l *layout) measure(st style.Style, words []word) float64 {
	for i := range words {
		w := &words[i]
		w.width = 0
		for j := range w.pieces {
			p := &w.pieces[j]
			l.setFont(st.Font, p.Run, st.Size)
			p.width = l.pdf.GetStringWidth(p.Text)
			w.width += p.width
		}
	}
	l.pdf.SetFont(st.Font.Family, fontStyle(st.Font), st.Size)
	return l.pdf.GetStringWidth(" ")
}

// setWords sets mixed-emphasis runs word by word, so every alignment,
// justify included, is honored across font changes.
func (l *layout) setWords(runs []markup.Run, st style.Style, x, width, lh float64) {
	words := splitWords(runs)
	space := l.measure(st, words)
	lines := breakLines(words, space, width)

	for i, line := range lines {
		if l.pdf.GetY()+lh > l.limit() {
			l.newPage()
		}
		y := l.pdf.GetY()
		start, gap := placeLine(line, space, width, st.Align, i == len(lines)-1)

		cx := x + start
		for _, w := range line {
			px := cx
			for _, p := range w.pieces {
				l.setFont(st.Font, p.Run, st.Size)
				l.pdf.SetXY(px, y)
				l.pdf.CellFormat(p.width, lh, p.Text, "", 0, "L", false, 0, "")
				px += p.width
			}
			cx += w.width + gap
		}
		l.pdf.SetXY(l.page.Margins.Left, y+lh)
	}
}

func (l *layout) setFont(base style.Font, r markup.Run, size float64) {
	f := base
	f.Bold = f.Bold || r.Bold
	f.Italic = f.Italic || r.Italic
	l.pdf.SetFont(f.Family, fontStyle(f), size)
}

// table draws t centered in the frame, starting a new page before any row
// that does not fit.
func (l *layout) table(t *model.Table) error {
	l.advance(0)

	x0 := l.page.Margins.Left + (l.page.FrameWidth()-t.Width())/2
	for row := range t.Rows {
		h := t.RowHeight(row)
		if h > l.page.FrameHeight() {
			return fmt.Errorf("%w: row %d is %.1fpt, frame is %.1fpt",
				model.ErrElementTooTall, row, h, l.page.FrameHeight())
		}
		if l.pdf.GetY()+h > l.limit() {
			l.newPage()
		}
		y := l.pdf.GetY()
		l.drawRow(t, row, x0, y, h)
		l.pdf.SetY(y + h)
		l.fresh = false
	}
	return nil
}

// drawRow fills and writes every cell of row, then strokes the grid so no
// fill covers a border.
func (l *layout) drawRow(t *model.Table, row int, x0, y, h float64) {
	x := x0
	for col, cw := range t.ColWidths {
		cs := t.CellStyle(col, row)
		if cs.Background != nil {
			l.pdf.SetFillColor(cs.Background.RGB())
			l.pdf.Rect(x, y, cw, h, "F")
		}
		l.pdf.SetFont(cs.Font.Family, fontStyle(cs.Font), cs.FontSize)
		l.pdf.SetTextColor(cs.TextColor.RGB())
		l.pdf.SetXY(x+cs.PaddingLeft, y+cs.PaddingTop)
		l.pdf.CellFormat(cw-cs.PaddingLeft-cs.PaddingRight, cs.Leading(),
			encodeText(t.Rows[row][col]), "", 0, cellAlignStr(cs.Align), false, 0, "")
		x += cw
	}

	x = x0
	for col, cw := range t.ColWidths {
		if cs := t.CellStyle(col, row); cs.Grid != nil {
			l.pdf.SetDrawColor(cs.Grid.Color.RGB())
			l.pdf.SetLineWidth(cs.Grid.Width)
			l.pdf.Rect(x, y, cw, h, "D")
		}
		x += cw
	}
}

// lineHeight is the style's leading, but never less than its font size.
func lineHeight(st style.Style) float64 {
	return max(st.Leading, st.Size)
}

func uniform(runs []markup.Run) bool {
	for _, r := range runs[1:] {
		if r.Bold != runs[0].Bold || r.Italic != runs[0].Italic {
			return false
		}
	}
	return true
}

func fontStyle(f style.Font) string {
	switch {
	case f.Bold && f.Italic:
		return "BI"
	case f.Bold:
		return "B"
	case f.Italic:
		return "I"
	default:
		return ""
	}
}

func alignStr(a style.Alignment) string {
	switch a {
	case style.AlignCenter:
		return "C"
	case style.AlignRight:
		return "R"
	case style.AlignJustify:
		return "J"
	default:
		return "L"
	}
}

// cellAlignStr maps justify to left; single-line cells have nothing to
// stretch.
func cellAlignStr(a style.Alignment) string {
	if a == style.AlignJustify {
		return "L"
	}
	return alignStr(a)
}
