package model

import (
	"fmt"

	"github.com/h3network/h3report/internal/style"
)

// Default cell attributes, applied before any table command.
const (
	DefaultCellFontSize      = 10.0
	DefaultCellPaddingX      = 6.0
	DefaultCellPaddingY      = 3.0
	DefaultCellLeadingFactor = 1.2
)

// Op is a table style command.
type Op string

// Table style commands.
const (
	OpBackground    Op = "BACKGROUND"
	OpTextColor     Op = "TEXTCOLOR"
	OpAlign         Op = "ALIGN"
	OpFontName      Op = "FONTNAME"
	OpFontSize      Op = "FONTSIZE"
	OpBottomPadding Op = "BOTTOMPADDING"
	OpTopPadding    Op = "TOPPADDING"
	OpGrid          Op = "GRID"
)

// Cell addresses a table cell as (column, row). Negative values count from
// the end, so (-1, -1) is the bottom-right cell.
type Cell struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

// Command styles the rectangular region From..To (inclusive).
type Command struct {
	Op   Op   `json:"op" yaml:"op"`
	From Cell `json:"from" yaml:"from"`
	To   Cell `json:"to" yaml:"to"`

	Color style.Color     `json:"color,omitzero" yaml:"color,omitempty"`
	Font  style.Font      `json:"font,omitzero" yaml:"font,omitempty"`
	Align style.Alignment `json:"align,omitzero" yaml:"align,omitempty"`
	Value float64         `json:"value,omitempty" yaml:"value,omitempty"`
}

// Background fills the region with c.
func Background(from, to Cell, c style.Color) Command {
	return Command{Op: OpBackground, From: from, To: to, Color: c}
}

// TextColor sets the text color of the region.
func TextColor(from, to Cell, c style.Color) Command {
	return Command{Op: OpTextColor, From: from, To: to, Color: c}
}

// Align sets the horizontal alignment of the region.
func Align(from, to Cell, a style.Alignment) Command {
	return Command{Op: OpAlign, From: from, To: to, Align: a}
}

// FontName sets the font of the region.
func FontName(from, to Cell, f style.Font) Command {
	return Command{Op: OpFontName, From: from, To: to, Font: f}
}

// FontSize sets the font size of the region.
func FontSize(from, to Cell, size float64) Command {
	return Command{Op: OpFontSize, From: from, To: to, Value: size}
}

// BottomPadding sets the padding below the text of the region.
func BottomPadding(from, to Cell, pad float64) Command {
	return Command{Op: OpBottomPadding, From: from, To: to, Value: pad}
}

// TopPadding sets the padding above the text of the region.
func TopPadding(from, to Cell, pad float64) Command {
	return Command{Op: OpTopPadding, From: from, To: to, Value: pad}
}

// Grid draws every cell border of the region with the given line width.
func Grid(from, to Cell, width float64, c style.Color) Command {
	return Command{Op: OpGrid, From: from, To: to, Value: width, Color: c}
}

// Table is a grid of literal text cells with fixed column widths (points).
type Table struct {
	Rows      [][]string `json:"rows" yaml:"rows"`
	ColWidths []float64  `json:"colWidths" yaml:"colWidths"`
	Commands  []Command  `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// NewTable returns a table over rows with the given widths and commands.
func NewTable(rows [][]string, colWidths []float64, cmds ...Command) *Table {
	return &Table{Rows: rows, ColWidths: colWidths, Commands: cmds}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.ColWidths) }

// Width returns the sum of the column widths.
func (t *Table) Width() float64 {
	var w float64
	for _, cw := range t.ColWidths {
		w += cw
	}
	return w
}

// Validate checks the table's shape and that every command addresses cells
// inside it.
func (t *Table) Validate() error {
	if len(t.Rows) == 0 || len(t.ColWidths) == 0 {
		return ErrEmptyTable
	}
	for i, w := range t.ColWidths {
		if w <= 0 {
			return fmt.Errorf("%w: column %d is %v", ErrBadColumnWidth, i, w)
		}
	}
	for i, row := range t.Rows {
		if len(row) != len(t.ColWidths) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedTable, i, len(row), len(t.ColWidths))
		}
	}
	for i, cmd := range t.Commands {
		if _, _, _, _, err := t.region(cmd); err != nil {
			return fmt.Errorf("command %d (%s): %w", i, cmd.Op, err)
		}
	}
	return nil
}

// resolve turns a possibly negative index into an absolute one.
func resolve(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// region returns the absolute, ordered bounds of cmd.
func (t *Table) region(cmd Command) (c0, r0, c1, r1 int, err error) {
	var ok [4]bool
	c0, ok[0] = resolve(cmd.From.Col, t.NumCols())
	r0, ok[1] = resolve(cmd.From.Row, t.NumRows())
	c1, ok[2] = resolve(cmd.To.Col, t.NumCols())
	r1, ok[3] = resolve(cmd.To.Row, t.NumRows())
	for _, v := range ok {
		if !v {
			return 0, 0, 0, 0, fmt.Errorf("%w: %+v..%+v in %dx%d table",
				ErrCellOutOfRange, cmd.From, cmd.To, t.NumRows(), t.NumCols())
		}
	}
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return c0, r0, c1, r1, nil
}

// Line is a stroked border.
type Line struct {
	Width float64     `json:"width" yaml:"width"`
	Color style.Color `json:"color" yaml:"color"`
}

// CellStyle is the resolved appearance of one cell.
type CellStyle struct {
	Background *style.Color
	TextColor  style.Color
	Font       style.Font
	FontSize   float64
	Align      style.Alignment

	PaddingTop, PaddingBottom, PaddingLeft, PaddingRight float64

	// Grid is nil when the cell has no border.
	Grid *Line
}

// Leading returns the line height for the cell's font size.
func (s CellStyle) Leading() float64 {
	return s.FontSize * DefaultCellLeadingFactor
}

// Height returns the height of a single-line cell.
func (s CellStyle) Height() float64 {
	return s.PaddingTop + s.Leading() + s.PaddingBottom
}

// CellStyle applies the table's commands, in order, to cell (col, row).
// Later commands override earlier ones. Commands that do not resolve are
// skipped; Validate reports them.
func (t *Table) CellStyle(col, row int) CellStyle {
	cs := CellStyle{
		TextColor:     style.Black,
		Font:          style.Helvetica,
		FontSize:      DefaultCellFontSize,
		Align:         style.AlignLeft,
		PaddingTop:    DefaultCellPaddingY,
		PaddingBottom: DefaultCellPaddingY,
		PaddingLeft:   DefaultCellPaddingX,
		PaddingRight:  DefaultCellPaddingX,
	}

	for _, cmd := range t.Commands {
		c0, r0, c1, r1, err := t.region(cmd)
		if err != nil || col < c0 || col > c1 || row < r0 || row > r1 {
			continue
		}
		switch cmd.Op {
		case OpBackground:
			c := cmd.Color
			cs.Background = &c
		case OpTextColor:
			cs.TextColor = cmd.Color
		case OpAlign:
			cs.Align = cmd.Align
		case OpFontName:
			cs.Font = cmd.Font
		case OpFontSize:
			cs.FontSize = cmd.Value
		case OpBottomPadding:
			cs.PaddingBottom = cmd.Value
		case OpTopPadding:
			cs.PaddingTop = cmd.Value
		case OpGrid:
			cs.Grid = &Line{Width: cmd.Value, Color: cmd.Color}
		}
	}
	return cs
}

// RowHeight returns the height of row, the tallest of its cells.
func (t *Table) RowHeight(row int) float64 {
	var h float64
	for col := range t.ColWidths {
		if ch := t.CellStyle(col, row).Height(); ch > h {
			h = ch
		}
	}
	return h
}
