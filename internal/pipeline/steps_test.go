package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/h3network/h3report/internal/config"
	"github.com/h3network/h3report/internal/content"
	"github.com/h3network/h3report/internal/database"
	"github.com/h3network/h3report/internal/model"
	"github.com/h3network/h3report/internal/render"
	"github.com/h3network/h3report/internal/style"
)

type mockRenderer struct {
	result *model.RenderResult
	err    error
	calls  int
}

func (m *mockRenderer) Render(_ context.Context, _ *model.Document) (*model.RenderResult, error) {
	m.calls++
	return m.result, m.err
}

type mockRecorder struct {
	err   error
	saved []*model.Run
}

func (m *mockRecorder) SaveRender(_ context.Context, run *model.Run) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, run)
	return nil
}

func newBuildStep() *BuildStep {
	return NewBuildStep(style.NewSheet(), config.DefaultPage(), content.OutputName)
}

func builtRun(t *testing.T) *model.Run {
	t.Helper()

	run := model.NewRun()
	if err := newBuildStep().Do(context.Background(), run); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return run
}

func TestStepNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step Step
		want string
	}{
		{step: newBuildStep(), want: "build"},
		{step: NewRenderStep(&mockRenderer{}), want: "render"},
		{step: NewRecordStep(&mockRecorder{}), want: "record"},
	}

	for _, tt := range tests {
		if got := tt.step.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestBuildStep(t *testing.T) {
	t.Parallel()

	t.Run("builds the document", func(t *testing.T) {
		t.Parallel()

		run := builtRun(t)
		if run.State != model.StateBuilt {
			t.Errorf("state = %s, want built", run.State)
		}
		if run.Document == nil || run.Document.Output != content.OutputName {
			t.Fatalf("unexpected document: %+v", run.Document)
		}
		want, err := run.Document.Fingerprint()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if run.Fingerprint != want {
			t.Errorf("fingerprint = %q, want %q", run.Fingerprint, want)
		}
	})

	t.Run("rejects a second build", func(t *testing.T) {
		t.Parallel()

		run := builtRun(t)
		if err := newBuildStep().Do(context.Background(), run); !errors.Is(err, model.ErrInvalidTransition) {
			t.Errorf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unknown style fails validation", func(t *testing.T) {
		t.Parallel()

		step := NewBuildStep(&style.Sheet{}, config.DefaultPage(), content.OutputName)
		run := model.NewRun()
		err := step.Do(context.Background(), run)
		var layoutErr *model.LayoutError
		if !errors.As(err, &layoutErr) {
			t.Fatalf("expected *model.LayoutError, got %v", err)
		}
		if run.State != model.StateUninitialized {
			t.Errorf("state = %s, want uninitialized", run.State)
		}
	})
}

func TestRenderStep(t *testing.T) {
	t.Parallel()

	t.Run("stores the result", func(t *testing.T) {
		t.Parallel()

		result := &model.RenderResult{Path: "/tmp/out.pdf", Pages: 3, Bytes: 100}
		renderer := &mockRenderer{result: result}
		run := builtRun(t)

		if err := NewRenderStep(renderer).Do(context.Background(), run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if run.State != model.StateRendered {
			t.Errorf("state = %s, want rendered", run.State)
		}
		if run.Result != result {
			t.Errorf("result = %+v, want %+v", run.Result, result)
		}
		if run.FinishedAt.IsZero() {
			t.Error("expected FinishedAt to be set")
		}
	})

	t.Run("requires a built run", func(t *testing.T) {
		t.Parallel()

		renderer := &mockRenderer{}
		err := NewRenderStep(renderer).Do(context.Background(), model.NewRun())
		if !errors.Is(err, ErrNoDocument) {
			t.Errorf("expected ErrNoDocument, got %v", err)
		}
		if renderer.calls != 0 {
			t.Error("renderer should not be called")
		}
	})

	t.Run("returns renderer errors", func(t *testing.T) {
		t.Parallel()

		ioErr := &model.IOError{Op: "rename", Path: "/x.pdf", Err: os.ErrPermission}
		run := builtRun(t)

		err := NewRenderStep(&mockRenderer{err: ioErr}).Do(context.Background(), run)
		if !errors.Is(err, os.ErrPermission) {
			t.Errorf("expected permission error, got %v", err)
		}
		if run.State != model.StateBuilt {
			t.Errorf("state = %s, want built", run.State)
		}
	})
}

func TestRecordStep(t *testing.T) {
	t.Parallel()

	t.Run("saves the run", func(t *testing.T) {
		t.Parallel()

		recorder := &mockRecorder{}
		run := model.NewRun()
		if err := NewRecordStep(recorder).Do(context.Background(), run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recorder.saved) != 1 || recorder.saved[0] != run {
			t.Errorf("expected run to be saved, got %v", recorder.saved)
		}
	})

	t.Run("failures are logged not returned", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		recorder := &mockRecorder{err: errors.New("disk full")}

		err := NewRecordStep(recorder, WithRecordLogger(logger)).Do(context.Background(), model.NewRun())
		if err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
		if !strings.Contains(buf.String(), "disk full") {
			t.Errorf("expected warning in log, got %q", buf.String())
		}
	})
}

// TestFullPipeline builds, renders and records the report into temp dirs.
func TestFullPipeline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, content.OutputName)

	db, err := database.Open(filepath.Join(dir, "data"), database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	logger := quietLogger()
	p := New(WithLogger(logger))
	p.AddSteps(
		NewBuildStep(style.NewSheet(), config.DefaultPage(), output),
		NewRenderStep(render.NewInvoker(render.WithLogger(logger))),
		NewRecordStep(db, WithRecordLogger(logger)),
	)

	run := model.NewRun()
	if err := p.Execute(context.Background(), run); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	if run.State != model.StateRendered {
		t.Errorf("state = %s, want rendered", run.State)
	}
	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() != run.Result.Bytes {
		t.Errorf("file size %d, result bytes %d", info.Size(), run.Result.Bytes)
	}

	latest, err := db.LatestRender(context.Background())
	if err != nil {
		t.Fatalf("failed to read history: %v", err)
	}
	if latest.ID != run.ID || latest.Fingerprint != run.Fingerprint || latest.Pages != run.Result.Pages {
		t.Errorf("history record %+v does not match run %+v", latest, run)
	}
}
