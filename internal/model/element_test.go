package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/h3network/h3report/internal/markup"
)

// TestKindString tests the String method of Kind.
func TestKindString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind     Kind
		expected string
	}{
		{KindHeading, "heading"},
		{KindParagraph, "paragraph"},
		{KindBullet, "bullet"},
		{KindSpacer, "spacer"},
		{KindPageBreak, "pagebreak"},
		{KindTable, "table"},
		{Kind(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if got := tc.kind.String(); got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestKindText(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(KindTable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"table"` {
		t.Errorf("got %s, expected \"table\"", data)
	}

	var k Kind
	if err := json.Unmarshal([]byte(`"spacer"`), &k); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != KindSpacer {
		t.Errorf("got %s, expected spacer", k)
	}
	if err := json.Unmarshal([]byte(`"figure"`), &k); err == nil {
		t.Error("expected error for unknown kind")
	}
}

// TestElementText tests that literal text survives escaping and that rich
// text keeps its emphasis.
func TestElementText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		elem Element
		want string
	}{
		{"literal heading", Heading("Section", "R&D <ops>"), "R&D <ops>"},
		{"rich paragraph", RichParagraph("Body", "<b>Key:</b> value"), "Key: value"},
		{"bullet gets marker", Bullet("Bullet", "Slow query detection (>1s alerts)"), "• Slow query detection (>1s alerts)"},
		{"emoji verbatim", Paragraph("Success", "✅ Security: done"), "✅ Security: done"},
		{"spacer has no text", Spacer(10), ""},
		{"page break has no text", PageBreak(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.elem.Text()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementRuns(t *testing.T) {
	t.Parallel()

	runs, err := RichBullet("Bullet", "<b>Label:</b> rest").Runs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []markup.Run{
		{Text: "• "},
		{Text: "Label:", Bold: true},
		{Text: " rest"},
	}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d: %+v", len(runs), len(want), runs)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestElementRunsMalformed(t *testing.T) {
	t.Parallel()

	_, err := RichParagraph("Body", "<b>open").Runs()
	if !errors.Is(err, markup.ErrUnbalancedTag) {
		t.Errorf("expected ErrUnbalancedTag, got %v", err)
	}
}
