package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHexColor is returned by ParseHex for anything other than
// "#RRGGBB" or "RRGGBB".
var ErrInvalidHexColor = errors.New("invalid hex color: expected #RRGGBB")

// Color is an 8-bit RGB color.
// It marshals to and from its "#RRGGBB" form.
type Color struct {
	R, G, B uint8
}

// Brand palette.
var (
	// Blue is the deep brand blue used for titles and table headers.
	Blue = MustParseHex("#1E40AF")

	// Green is the success green used for checklist items.
	Green = MustParseHex("#059669")

	// Orange is the warning orange. Declared with the palette, nothing
	// in the current report draws with it.
	Orange = MustParseHex("#F59E0B")

	// Gray is the muted text gray of the footer.
	Gray = MustParseHex("#6B7280")

	// LightBlue is the tint behind the phase table body.
	LightBlue = MustParseHex("#EFF6FF")

	Black = Color{}
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF}
)

// ParseHex parses a color written as "#RRGGBB" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is meant for package-level color literals.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGB returns the components as ints, the form most drawing APIs take.
func (c Color) RGB() (r, g, b int) {
	return int(c.R), int(c.G), int(c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
