package database

import "errors"

var (
	// ErrNotFound is returned when Open is asked not to create a missing
	// database.
	ErrNotFound = errors.New("database not found")

	// ErrIncompleteRun is returned by SaveRender for a run without a
	// document or render result.
	ErrIncompleteRun = errors.New("run has no document or result")

	// ErrNoRenders is returned by LatestRender when nothing was recorded.
	ErrNoRenders = errors.New("no renders recorded")
)
