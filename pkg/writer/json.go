// Package writer provides JSON output for analysis reports.
package writer

import (
	"encoding/json"
	"io"
	"os"

	"github.com/refchain-analysis/pkg/errors"
)

// JSONWriter writes report data as JSON.
type JSONWriter[T any] struct {
	// Indent specifies the indentation for pretty printing.
	// Empty string means compact output.
	Indent string
}

// NewJSONWriter creates a new JSON writer with compact output.
func NewJSONWriter[T any]() *JSONWriter[T] {
	return &JSONWriter[T]{Indent: ""}
}

// NewPrettyJSONWriter creates a JSON writer with two-space indentation,
// matching the report format downstream tooling consumes.
func NewPrettyJSONWriter[T any]() *JSONWriter[T] {
	return &JSONWriter[T]{Indent: "  "}
}

// Write writes the data as JSON to the writer.
func (w *JSONWriter[T]) Write(data T, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	if w.Indent != "" {
		encoder.SetIndent("", w.Indent)
	}
	if err := encoder.Encode(data); err != nil {
		return errors.Wrap(errors.CodeWriteError, "failed to encode report", err)
	}
	return nil
}

// WriteToFile writes the data as JSON to a file.
func (w *JSONWriter[T]) WriteToFile(data T, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return errors.Wrap(errors.CodeWriteError, "failed to create file", err)
	}
	defer file.Close()

	return w.Write(data, file)
}
