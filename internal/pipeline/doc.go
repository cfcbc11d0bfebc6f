// Package pipeline runs a report through its steps in order.
//
// A run starts uninitialized. BuildStep assembles and validates the
// document, RenderStep writes it, and RecordStep stores the result in the
// history database. The pipeline checks for cancellation before each step
// and marks the run failed on the first error.
package pipeline
