package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/h3network/h3report/internal/content"
	"github.com/h3network/h3report/internal/model"
	"github.com/h3network/h3report/internal/style"
)

// BuildStep assembles the report document and moves the run to built.
type BuildStep struct {
	sheet  *style.Sheet
	page   model.PageSetup
	output string
}

// NewBuildStep creates a step that builds the report with sheet on page,
// destined for output.
func NewBuildStep(sheet *style.Sheet, page model.PageSetup, output string) *BuildStep {
	return &BuildStep{sheet: sheet, page: page, output: output}
}

// Name returns the step name.
func (s *BuildStep) Name() string {
	return "build"
}

// Do builds and validates the document and records its fingerprint.
func (s *BuildStep) Do(_ context.Context, run *model.Run) error {
	doc := content.Build(s.sheet, s.page, s.output)
	if err := doc.Validate(); err != nil {
		return err
	}

	fingerprint, err := doc.Fingerprint()
	if err != nil {
		return fmt.Errorf("failed to fingerprint document: %w", err)
	}

	if err := run.Advance(model.StateBuilt); err != nil {
		return err
	}
	run.Document = doc
	run.Fingerprint = fingerprint
	return nil
}

// Renderer writes a document to its destination.
type Renderer interface {
	Render(ctx context.Context, doc *model.Document) (*model.RenderResult, error)
}

// RenderStep writes the built document and moves the run to rendered.
type RenderStep struct {
	renderer Renderer
}

// NewRenderStep creates a step that renders with renderer.
func NewRenderStep(renderer Renderer) *RenderStep {
	return &RenderStep{renderer: renderer}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do renders the run's document.
func (s *RenderStep) Do(ctx context.Context, run *model.Run) error {
	if run.State != model.StateBuilt || run.Document == nil {
		return fmt.Errorf("%w (state %s)", ErrNoDocument, run.State)
	}

	result, err := s.renderer.Render(ctx, run.Document)
	if err != nil {
		return err
	}

	run.Result = result
	return run.Advance(model.StateRendered)
}

// Recorder stores finished runs.
type Recorder interface {
	SaveRender(ctx context.Context, run *model.Run) error
}

// RecordStep saves the rendered run. A report that was written is not
// failed by a history error, so failures are only logged.
type RecordStep struct {
	recorder Recorder
	logger   *slog.Logger
}

// RecordStepOption configures a RecordStep.
type RecordStepOption func(*RecordStep)

// WithRecordLogger sets the logger used to report history failures.
func WithRecordLogger(logger *slog.Logger) RecordStepOption {
	return func(s *RecordStep) {
		s.logger = logger
	}
}

// NewRecordStep creates a step that saves runs with recorder.
func NewRecordStep(recorder Recorder, opts ...RecordStepOption) *RecordStep {
	s := &RecordStep{
		recorder: recorder,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *RecordStep) Name() string {
	return "record"
}

// Do saves the run.
func (s *RecordStep) Do(ctx context.Context, run *model.Run) error {
	if err := s.recorder.SaveRender(ctx, run); err != nil {
		s.logger.Warn("failed to record render",
			"run", run.ID,
			"error", err,
		)
		return nil
	}

	s.logger.Debug("render recorded", "run", run.ID)
	return nil
}
