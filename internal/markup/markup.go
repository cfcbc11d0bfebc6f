package markup

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	nethtml "golang.org/x/net/html"
)

// Run is a span of text with uniform emphasis.
type Run struct {
	Text   string `json:"text" yaml:"text"`
	Bold   bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
}

// Parse splits s into runs. Adjacent runs with the same emphasis are merged
// and empty runs are dropped.
func Parse(s string) ([]Run, error) {
	z := nethtml.NewTokenizer(strings.NewReader(s))

	var (
		runs   []Run
		bold   int
		italic int
	)

	for {
		tt := z.Next()
		switch tt {
		case nethtml.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to tokenize markup: %w", err)
			}
			if bold != 0 || italic != 0 {
				return nil, fmt.Errorf("%w: unclosed tag in %q", ErrUnbalancedTag, s)
			}
			return runs, nil

		case nethtml.TextToken:
			runs = appendRun(runs, Run{
				Text:   string(z.Text()),
				Bold:   bold > 0,
				Italic: italic > 0,
			})

		case nethtml.StartTagToken, nethtml.EndTagToken:
			name, _ := z.TagName()
			counter, err := emphasis(string(name), &bold, &italic)
			if err != nil {
				return nil, err
			}
			if tt == nethtml.StartTagToken {
				*counter++
				continue
			}
			if *counter == 0 {
				return nil, fmt.Errorf("%w: </%s> without <%s>", ErrUnbalancedTag, name, name)
			}
			*counter--

		case nethtml.SelfClosingTagToken, nethtml.CommentToken, nethtml.DoctypeToken:
			name, _ := z.TagName()
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedTag, name)
		}
	}
}

// emphasis maps a tag name onto the counter it adjusts.
func emphasis(name string, bold, italic *int) (*int, error) {
	switch name {
	case "b", "strong":
		return bold, nil
	case "i", "em":
		return italic, nil
	default:
		return nil, fmt.Errorf("%w: <%s>", ErrUnsupportedTag, name)
	}
}

func appendRun(runs []Run, r Run) []Run {
	if r.Text == "" {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].Bold == r.Bold && runs[n-1].Italic == r.Italic {
		runs[n-1].Text += r.Text
		return runs
	}
	return append(runs, r)
}

// PlainText returns s with all tags removed and character references
// resolved. Malformed markup yields an error.
func PlainText(s string) (string, error) {
	runs, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Join(runs), nil
}

// Join concatenates the text of runs.
func Join(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Escape makes literal text safe to embed in markup.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Bold wraps already-escaped markup in a bold tag.
func Bold(s string) string {
	return "<b>" + s + "</b>"
}
