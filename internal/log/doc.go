// Package log builds the application's slog logger.
//
// Log lines routinely carry file paths: the report destination, its
// temporary file, the history database. RedactHandler rewrites the user's
// home directory in those values to "~" before they reach the output, so
// logs pasted into issues do not reveal account names.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("document rendered", "path", "/home/alice/report.pdf")
//	// path=~/report.pdf
package log
