package markup

import "errors"

var (
	// ErrUnsupportedTag is returned for any tag other than b, strong, i and em.
	ErrUnsupportedTag = errors.New("unsupported markup tag")

	// ErrUnbalancedTag is returned when a closing tag has no matching
	// opening tag, or when a tag is left open at the end of the text.
	ErrUnbalancedTag = errors.New("unbalanced markup tag")
)
