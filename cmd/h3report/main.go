// Package main provides the entry point for the h3report CLI.
//
// h3report builds the H3 Network progress report and writes it as a PDF
// in the working directory.
//
// Usage:
//
//	h3report
//	h3report outline --format markdown
//	h3report history --limit 5
//
// See --help for all available options.
package main

// main is the entry point for h3report.
func main() {
	Execute()
}
