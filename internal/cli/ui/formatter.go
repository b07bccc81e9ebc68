package ui

import (
	"encoding/json"
	"fmt"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatPretty represents human-readable output format
	FormatPretty OutputFormat = "pretty"
	// FormatJSON represents JSON output format
	FormatJSON OutputFormat = "json"
)

// ParseFormat converts a string to OutputFormat
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "pretty", "":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Formatter is the interface for reporting output
type Formatter interface {
	// Output displays data
	Output(data interface{}) error

	// IsJSON returns true if this formatter outputs JSON
	IsJSON() bool
}

// prettyFormatter implements Formatter for human-readable output
type prettyFormatter struct {
	console *Console
}

// NewFormatter creates the formatter for format writing through console
func NewFormatter(format OutputFormat, console *Console) (Formatter, error) {
	switch format {
	case FormatPretty:
		return &prettyFormatter{console: console}, nil
	case FormatJSON:
		encoder := json.NewEncoder(console.Out())
		encoder.SetIndent("", "  ")
		return &jsonFormatter{encoder: encoder}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func (f *prettyFormatter) Output(data interface{}) error {
	// Pretty data is expected to be already formatted
	if str, ok := data.(string); ok {
		f.console.OutputLine("%s", str)
		return nil
	}
	f.console.OutputLine("%v", data)
	return nil
}

func (f *prettyFormatter) IsJSON() bool {
	return false
}

// jsonFormatter implements Formatter for JSON output
type jsonFormatter struct {
	encoder *json.Encoder
}

func (f *jsonFormatter) Output(data interface{}) error {
	return f.encoder.Encode(data)
}

func (f *jsonFormatter) IsJSON() bool {
	return true
}
