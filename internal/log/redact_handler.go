package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// HomeMarker replaces the home directory in logged values.
const HomeMarker = "~"

// RedactHandler wraps an slog.Handler and replaces the home directory
// prefix in string attributes, error attributes and the message.
type RedactHandler struct {
	// handler is the underlying slog handler that receives redacted records.
	handler slog.Handler

	// home is the directory to hide. Empty disables redaction.
	home string
}

// NewRedactHandler creates a RedactHandler hiding home. If handler is nil,
// slog.Default().Handler() is used.
func NewRedactHandler(handler slog.Handler, home string) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	home = filepath.Clean(home)
	if home == "." || home == string(filepath.Separator) {
		home = ""
	}
	return &RedactHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle redacts the record and passes it to the underlying handler.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, h.redact(r.Message), r.PC)

	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(h.redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are redacted before being added.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redactAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(redacted), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// redactAttr redacts a single attribute, recursively handling groups.
func (h *RedactHandler) redactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			redacted[i] = h.redactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	case slog.KindString:
		return slog.String(a.Key, h.redact(a.Value.String()))
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, h.redact(err.Error()))
		}
	}
	return a
}

// redact replaces every occurrence of the home directory in s. A match must
// end at a path separator or the end of a path so that /home/al does not
// touch /home/alice.
func (h *RedactHandler) redact(s string) string {
	if h.home == "" || !strings.Contains(s, h.home) {
		return s
	}

	var sb strings.Builder
	for {
		i := strings.Index(s, h.home)
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		end := i + len(h.home)
		sb.WriteString(s[:i])
		if end == len(s) || isBoundary(s[end]) {
			sb.WriteString(HomeMarker)
		} else {
			sb.WriteString(h.home)
		}
		s = s[end:]
	}
}

func isBoundary(c byte) bool {
	switch c {
	case '/', '\\', ' ', '"', '\'', ':', ')', ',':
		return true
	default:
		return false
	}
}

// NewLogger creates a text logger with home directory redaction.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	return slog.New(NewRedactHandler(slog.NewTextHandler(w, opts), home))
}
