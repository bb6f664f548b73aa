package output

import (
	"fmt"
	"io"
)

// TextFormatter writes one rendered record per line.
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes each view's deterministic render.
func (f *TextFormatter) Format(views []View) error {
	for _, v := range views {
		if _, err := fmt.Fprintln(f.writer, v.Text); err != nil {
			return err
		}
	}
	return nil
}
