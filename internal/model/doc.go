// Package model defines the core data structures of the report generator.
//
// This package contains the following main types:
//   - Element: one unit of content (heading, paragraph, bullet, spacer,
//     page break or table)
//   - Table: rows of literal cells plus region style commands
//   - Document: the ordered element sequence with page geometry and styles
//   - Run: one build-and-render execution and its state machine
//
// It also holds the error taxonomy shared by the builder, the writers and
// the render step: LayoutError for structurally rejected elements and
// IOError for destinations that cannot be written.
//
// The models serialize to JSON and YAML for outlines, fingerprints and the
// render history.
package model
