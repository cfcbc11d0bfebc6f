// Package content holds the literal text of the H3 Network progress report
// and assembles it into a model.Document.
//
// The collections here (accomplishment categories, phase and metric rows,
// checklist lines, next steps, impact statements) are fixed. Build walks
// them in report order and appends one element per heading, paragraph,
// bullet, spacer, page break and table.
package content
