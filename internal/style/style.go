package style

import "fmt"

// Alignment is the horizontal alignment of a paragraph or table cell.
type Alignment int

const (
	// AlignLeft is flush-left, ragged-right text.
	AlignLeft Alignment = iota
	// AlignCenter centers every line.
	AlignCenter
	// AlignRight is flush-right text.
	AlignRight
	// AlignJustify stretches every line but the last to the full width.
	AlignJustify
)

// String returns the lowercase alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*a = AlignLeft
	case "center":
		*a = AlignCenter
	case "right":
		*a = AlignRight
	case "justify":
		*a = AlignJustify
	default:
		return fmt.Errorf("unknown alignment %q", text)
	}
	return nil
}

// Font names a face from the standard PDF font set.
type Font struct {
	Family string `json:"family" yaml:"family"`
	Bold   bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
}

// Helvetica faces used by the sheet.
var (
	Helvetica            = Font{Family: "Helvetica"}
	HelveticaBold        = Font{Family: "Helvetica", Bold: true}
	HelveticaBoldOblique = Font{Family: "Helvetica", Bold: true, Italic: true}
)

// Style is a named bundle of text attributes. Sizes and spacing are in
// points.
type Style struct {
	Name   string `json:"name" yaml:"name"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`

	Font  Font    `json:"font" yaml:"font"`
	Size  float64 `json:"size" yaml:"size"`
	Color Color   `json:"color" yaml:"color"`

	// Leading is the baseline-to-baseline distance. Derived styles keep
	// their parent's leading unless they set one.
	Leading float64 `json:"leading" yaml:"leading"`

	Align       Alignment `json:"align" yaml:"align"`
	SpaceBefore float64   `json:"spaceBefore,omitempty" yaml:"spaceBefore,omitempty"`
	SpaceAfter  float64   `json:"spaceAfter,omitempty" yaml:"spaceAfter,omitempty"`
	LeftIndent  float64   `json:"leftIndent,omitempty" yaml:"leftIndent,omitempty"`

	// Level is the outline level for heading styles (1 is the top), 0 for
	// running text.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`
}
