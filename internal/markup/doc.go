// Package markup parses the small inline markup used in report paragraphs.
//
// Paragraph text may contain <b>/<strong> and <i>/<em> tags and HTML
// character references. Parse turns such text into a flat list of Runs,
// each carrying its own bold/italic flags, which writers map onto fonts.
// Any other tag is rejected.
package markup
