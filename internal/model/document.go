package model

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/h3network/h3report/internal/style"
)

// Inch is one inch in points.
const Inch = 72.0

// Margins are page margins in points.
type Margins struct {
	Top    float64 `json:"top" yaml:"top"`
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// PageSetup is the page geometry of a document.
type PageSetup struct {
	// Size is the page size name understood by the layout engine.
	Size string `json:"size" yaml:"size"`

	// Width and Height are the page dimensions in points.
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`

	Margins Margins `json:"margins" yaml:"margins"`
}

// FrameWidth returns the width available between the side margins.
func (p PageSetup) FrameWidth() float64 {
	return p.Width - p.Margins.Left - p.Margins.Right
}

// FrameHeight returns the height available between top and bottom margins.
func (p PageSetup) FrameHeight() float64 {
	return p.Height - p.Margins.Top - p.Margins.Bottom
}

// Document is an ordered element sequence plus everything needed to render
// it: page geometry, styles, output name and metadata.
type Document struct {
	Title   string `json:"title" yaml:"title"`
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`

	// Output is the destination file name.
	Output string `json:"output" yaml:"output"`

	Page     PageSetup    `json:"page" yaml:"page"`
	Styles   *style.Sheet `json:"styles" yaml:"styles"`
	Elements []Element    `json:"elements" yaml:"elements"`
}

// Append adds elements to the end of the sequence.
func (d *Document) Append(elems ...Element) {
	d.Elements = append(d.Elements, elems...)
}

// Count returns how many elements of kind the document holds.
func (d *Document) Count(kind Kind) int {
	n := 0
	for _, e := range d.Elements {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Tables returns the document's tables in order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, e := range d.Elements {
		if e.Kind == KindTable {
			tables = append(tables, e.Table)
		}
	}
	return tables
}

// Validate checks every element. The first failure is returned as a
// *LayoutError.
func (d *Document) Validate() error {
	if d.Styles == nil {
		return &LayoutError{Index: -1, Err: fmt.Errorf("%w: document has no style sheet", ErrUnknownStyle)}
	}
	for i, e := range d.Elements {
		if err := d.validateElement(e); err != nil {
			return &LayoutError{Index: i, Kind: e.Kind, Err: err}
		}
	}
	return nil
}

func (d *Document) validateElement(e Element) error {
	switch {
	case e.IsText():
		if !d.Styles.Has(e.Style) {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, e.Style)
		}
		_, err := e.Runs()
		return err
	case e.Kind == KindSpacer:
		if e.Height < 0 {
			return fmt.Errorf("%w: %v", ErrNegativeSpacer, e.Height)
		}
	case e.Kind == KindTable:
		if e.Table == nil {
			return ErrEmptyTable
		}
		return e.Table.Validate()
	case e.Kind == KindPageBreak:
	default:
		return fmt.Errorf("unknown element kind %d", e.Kind)
	}
	return nil
}

// TextLines returns the plain text of every text element and every table
// row, in document order. Table rows are their cells joined with " | ".
func (d *Document) TextLines() ([]string, error) {
	var lines []string
	for i, e := range d.Elements {
		switch {
		case e.IsText():
			text, err := e.Text()
			if err != nil {
				return nil, &LayoutError{Index: i, Kind: e.Kind, Err: err}
			}
			lines = append(lines, text)
		case e.Kind == KindTable && e.Table != nil:
			for _, row := range e.Table.Rows {
				lines = append(lines, strings.Join(row, " | "))
			}
		}
	}
	return lines, nil
}

// Fingerprint returns the hex SHA3-256 of the document's JSON encoding.
// Two documents with equal fingerprints have the same geometry, styles and
// element sequence.
func (d *Document) Fingerprint() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
