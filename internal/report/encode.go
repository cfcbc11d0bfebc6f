package report

import (
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/h3network/h3report/internal/markup"
)

// encodeWinAnsi converts s to the single-byte encoding of the PDF core
// fonts. Runes with no Windows-1252 code point (emoji, variation
// selectors) are dropped.
func encodeWinAnsi(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// collapseSpaces replaces every run of spaces with a single space.
func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	prev := false
	for i := 0; i < len(s); i++ {
		space := s[i] == ' '
		if space && prev {
			continue
		}
		sb.WriteByte(s[i])
		prev = space
	}
	return sb.String()
}

// encodeText prepares a single string, such as a table cell, for a core
// font: encoded, spaces collapsed, and trimmed.
func encodeText(s string) string {
	return strings.TrimSpace(collapseSpaces(encodeWinAnsi(s)))
}

// encodeRuns prepares a run sequence for a core font. Dropping a glyph can
// leave doubled spaces across run boundaries, so those are collapsed too.
// The result has no leading or trailing space and no empty runs.
func encodeRuns(runs []markup.Run) []markup.Run {
	out := make([]markup.Run, 0, len(runs))
	for _, r := range runs {
		r.Text = collapseSpaces(encodeWinAnsi(r.Text))
		if n := len(out); n > 0 && strings.HasSuffix(out[n-1].Text, " ") {
			r.Text = strings.TrimLeft(r.Text, " ")
		}
		if len(out) == 0 {
			r.Text = strings.TrimLeft(r.Text, " ")
		}
		if r.Text == "" {
			continue
		}
		out = append(out, r)
	}
	for n := len(out); n > 0; n = len(out) {
		out[n-1].Text = strings.TrimRight(out[n-1].Text, " ")
		if out[n-1].Text != "" {
			break
		}
		out = out[:n-1]
	}
	return out
}
