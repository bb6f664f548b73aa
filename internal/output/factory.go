package output

import (
	"fmt"
	"io"
)

// Formatter writes a batch of record views to its destination.
type Formatter interface {
	Format(views []View) error
}

// NewFormatter returns a formatter for the given format name.
func NewFormatter(format string, writer io.Writer) (Formatter, error) {
	switch format {
	case "text":
		return NewTextFormatter(writer), nil
	case "json":
		return NewJSONFormatter(writer), nil
	case "yaml":
		return NewYAMLFormatter(writer), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, SupportedFormats(),
		)
	}
}

// SupportedFormats returns the list of available format names.
func SupportedFormats() []string {
	return []string{"text", "json", "yaml"}
}
