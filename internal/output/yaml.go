package output

import (
	"io"

	"github.com/goccy/go-yaml"
)

// YAMLFormatter formats record views as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the views as a YAML document.
func (f *YAMLFormatter) Format(views []View) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))
	if err := encoder.Encode(views); err != nil {
		return err
	}
	return encoder.Close()
}
