package pipeline

import "errors"

// ErrNoDocument is returned by RenderStep when the run has not been built.
var ErrNoDocument = errors.New("run has no built document")
