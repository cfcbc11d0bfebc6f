// Package style defines the report's color palette and its named paragraph
// styles.
//
// Styles are derived from a small base sheet (Normal, Heading1-3) in the same
// way a classic sample stylesheet works: a derived style starts as a copy of
// its parent and overrides font, size, color, alignment and spacing. Every
// Style is a value; the Sheet hands out copies, so a style cannot change once
// the sheet has been built.
package style
