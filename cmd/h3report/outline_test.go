package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestOutlineFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{name: "text", format: formatText, want: []string{"H3 NETWORK PLATFORM", "elements"}},
		{name: "json", format: formatJSON, want: []string{`"fingerprint"`, `"document"`}},
		{name: "yaml", format: formatYAML, want: []string{"fingerprint:", "document:"}},
		{name: "markdown", format: formatMarkdown, want: []string{"# H3 Network Platform", "Document Statistics"}},
		{name: "format is case insensitive", format: "JSON", want: []string{`"fingerprint"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cmd := NewOutlineCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"--format", tt.format})

			if err := cmd.Execute(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("expected %q in output", w)
				}
			}
		})
	}
}

func TestOutlineUnknownFormat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if _, err := newOutlineWriter(&out, "pdf"); !errors.Is(err, errUnknownFormat) {
		t.Errorf("expected errUnknownFormat, got %v", err)
	}
}
