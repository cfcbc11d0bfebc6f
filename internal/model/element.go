package model

import (
	"fmt"

	"github.com/h3network/h3report/internal/markup"
)

// Kind identifies what an Element is.
type Kind int

const (
	// KindHeading is a title, subtitle or section header.
	KindHeading Kind = iota
	// KindParagraph is running body text.
	KindParagraph
	// KindBullet is one bulleted list item.
	KindBullet
	// KindSpacer is vertical blank space.
	KindSpacer
	// KindPageBreak forces the next element onto a new page.
	KindPageBreak
	// KindTable is a grid of text cells.
	KindTable
)

var kindNames = map[Kind]string{
	KindHeading:   "heading",
	KindParagraph: "paragraph",
	KindBullet:    "bullet",
	KindSpacer:    "spacer",
	KindPageBreak: "pagebreak",
	KindTable:     "table",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown element kind %q", text)
}

// BulletMarker is prefixed to every bullet item.
const BulletMarker = "•"

// Element is one unit of document content. Which fields are set depends on
// Kind: text elements use Style and Markup, spacers use Height, tables use
// Table.
type Element struct {
	Kind   Kind    `json:"kind" yaml:"kind"`
	Style  string  `json:"style,omitempty" yaml:"style,omitempty"`
	Markup string  `json:"markup,omitempty" yaml:"markup,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Table  *Table  `json:"table,omitempty" yaml:"table,omitempty"`
}

// Heading returns a heading element with literal text.
func Heading(styleName, text string) Element {
	return Element{Kind: KindHeading, Style: styleName, Markup: markup.Escape(text)}
}

// Paragraph returns a body element with literal text.
func Paragraph(styleName, text string) Element {
	return Element{Kind: KindParagraph, Style: styleName, Markup: markup.Escape(text)}
}

// RichParagraph returns a body element whose text is already markup.
func RichParagraph(styleName, markupText string) Element {
	return Element{Kind: KindParagraph, Style: styleName, Markup: markupText}
}

// Bullet returns a bullet item with literal text.
func Bullet(styleName, text string) Element {
	return Element{Kind: KindBullet, Style: styleName, Markup: markup.Escape(text)}
}

// RichBullet returns a bullet item whose text is already markup.
func RichBullet(styleName, markupText string) Element {
	return Element{Kind: KindBullet, Style: styleName, Markup: markupText}
}

// Spacer returns vertical space of the given height in points.
func Spacer(height float64) Element {
	return Element{Kind: KindSpacer, Height: height}
}

// PageBreak returns an explicit page break.
func PageBreak() Element {
	return Element{Kind: KindPageBreak}
}

// TableElement wraps t as an element.
func TableElement(t *Table) Element {
	return Element{Kind: KindTable, Table: t}
}

// IsText reports whether the element carries styled text.
func (e Element) IsText() bool {
	switch e.Kind {
	case KindHeading, KindParagraph, KindBullet:
		return true
	default:
		return false
	}
}

// Runs parses the element's markup. Bullets get an unemphasized marker run
// in front of the item text.
func (e Element) Runs() ([]markup.Run, error) {
	if e.Kind != KindBullet {
		return markup.Parse(e.Markup)
	}
	return markup.Parse(BulletMarker + " " + e.Markup)
}

// Text returns the element's plain text, including the bullet marker.
// Non-text elements return "".
func (e Element) Text() (string, error) {
	if !e.IsText() {
		return "", nil
	}
	runs, err := e.Runs()
	if err != nil {
		return "", err
	}
	return markup.Join(runs), nil
}
