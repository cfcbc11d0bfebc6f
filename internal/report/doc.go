// Package report writes a model.Document in different output formats.
//
// This package contains:
//   - PDFWriter: the paginated report, laid out with go-pdf/fpdf
//   - MarkdownWriter: the outline as GitHub-flavored markdown
//   - JSONWriter and YAMLWriter: the full element tree for tooling
//   - TextWriter: plain text for terminal display
//
// Writers implement the Writer interface, so they can be used
// interchangeably and combined with MultiWriter.
package report
