package config

import "errors"

// Configuration validation errors returned by Config.Validate().
var (
	// ErrNoOutput is returned when the output path is empty.
	ErrNoOutput = errors.New("no output path specified")

	// ErrInvalidPageSize is returned when the page width or height is not
	// positive.
	ErrInvalidPageSize = errors.New("invalid page size: width and height must be positive")

	// ErrInvalidMargins is returned when a margin is negative or the margins
	// leave no room for content.
	ErrInvalidMargins = errors.New("invalid margins: must be non-negative and leave a printable frame")

	// ErrNoHistoryDir is returned when history is enabled without a
	// database directory.
	ErrNoHistoryDir = errors.New("history enabled but no database directory set")
)
