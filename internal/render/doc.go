// Package render writes a document to its destination file.
//
// The Invoker streams the PDF into a temporary file in the destination
// directory and renames it into place once it is complete, so a reader
// never sees a partially written report. Filesystem failures are reported
// as *model.IOError and layout failures as *model.LayoutError.
package render
