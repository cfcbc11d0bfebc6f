package style

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Base style names.
const (
	Normal   = "Normal"
	Heading1 = "Heading1"
	Heading2 = "Heading2"
	Heading3 = "Heading3"
)

// Report style names.
const (
	Title    = "Title"
	Subtitle = "Subtitle"
	Section  = "Section"
	Body     = "Body"
	Bullet   = "Bullet"
	Success  = "Success"
	Footer   = "Footer"
)

// Sheet is an immutable set of named styles.
type Sheet struct {
	styles map[string]Style
}

// NewSheet returns the base sheet plus the report styles.
func NewSheet() *Sheet {
	s := &Sheet{styles: make(map[string]Style)}
	for _, st := range baseStyles() {
		s.styles[st.Name] = st
	}

	s.derive(Title, Heading1, func(st *Style) {
		st.Font = HelveticaBold
		st.Size = 24
		st.SpaceAfter = 30
		st.Color = Blue
		st.Align = AlignCenter
	})
	s.derive(Subtitle, Heading2, func(st *Style) {
		st.Font = HelveticaBold
		st.Size = 16
		st.SpaceAfter = 20
		st.Color = Blue
	})
	s.derive(Section, Heading3, func(st *Style) {
		st.Font = HelveticaBold
		st.Size = 14
		st.SpaceBefore = 20
		st.SpaceAfter = 15
		st.Color = Blue
	})
	s.derive(Body, Normal, func(st *Style) {
		st.Font = Helvetica
		st.Size = 10
		st.SpaceAfter = 12
		st.Color = Black
		st.Align = AlignJustify
	})
	s.derive(Bullet, Normal, func(st *Style) {
		st.Font = Helvetica
		st.Size = 10
		st.SpaceAfter = 6
		st.LeftIndent = 20
		st.Color = Black
	})
	s.derive(Success, Normal, func(st *Style) {
		st.Font = HelveticaBold
		st.Size = 10
		st.SpaceAfter = 6
		st.LeftIndent = 20
		st.Color = Green
	})
	s.derive(Footer, Normal, func(st *Style) {
		st.Size = 9
		st.Color = Gray
		st.Align = AlignCenter
	})

	return s
}

// baseStyles mirrors the classic sample stylesheet the report styles
// inherit from.
func baseStyles() []Style {
	normal := Style{
		Name:    Normal,
		Font:    Helvetica,
		Size:    10,
		Leading: 12,
		Color:   Black,
	}

	h1 := normal
	h1.Name, h1.Parent = Heading1, Normal
	h1.Font, h1.Size, h1.Leading = HelveticaBold, 18, 22
	h1.SpaceAfter = 6
	h1.Level = 1

	h2 := normal
	h2.Name, h2.Parent = Heading2, Normal
	h2.Font, h2.Size, h2.Leading = HelveticaBold, 14, 18
	h2.SpaceBefore, h2.SpaceAfter = 12, 6
	h2.Level = 2

	h3 := normal
	h3.Name, h3.Parent = Heading3, Normal
	h3.Font, h3.Size, h3.Leading = HelveticaBoldOblique, 12, 14.4
	h3.SpaceBefore, h3.SpaceAfter = 12, 6
	h3.Level = 3

	return []Style{normal, h1, h2, h3}
}

// derive registers name as a copy of parent with fn applied.
func (s *Sheet) derive(name, parent string, fn func(*Style)) {
	st := s.MustStyle(parent)
	st.Name = name
	st.Parent = parent
	fn(&st)
	s.styles[name] = st
}

// Style returns a copy of the named style.
func (s *Sheet) Style(name string) (Style, bool) {
	st, ok := s.styles[name]
	return st, ok
}

// MustStyle is like Style but panics when name is not registered.
func (s *Sheet) MustStyle(name string) Style {
	st, ok := s.styles[name]
	if !ok {
		panic(fmt.Sprintf("style: %q is not registered", name))
	}
	return st
}

// Has reports whether name is registered.
func (s *Sheet) Has(name string) bool {
	_, ok := s.styles[name]
	return ok
}

// Names returns all registered style names, sorted.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Styles returns every style in name order.
func (s *Sheet) Styles() []Style {
	names := s.Names()
	out := make([]Style, len(names))
	for i, name := range names {
		out[i] = s.styles[name]
	}
	return out
}

// MarshalJSON encodes the sheet as a name-ordered list.
func (s *Sheet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Styles())
}

// MarshalYAML encodes the sheet as a name-ordered list.
func (s *Sheet) MarshalYAML() (interface{}, error) {
	return s.Styles(), nil
}
