package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/DevSymphony/regexify/pkg/schema"
)

// outputFormat names an encoding for command results.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

// formatValue is a pflag.Value restricted to a fixed set of formats,
// so bad values are rejected while flags are parsed.
type formatValue struct {
	value   outputFormat
	allowed []outputFormat
}

func newFormatValue(def outputFormat, allowed ...outputFormat) *formatValue {
	return &formatValue{value: def, allowed: allowed}
}

func (f *formatValue) String() string {
	return string(f.value)
}

func (f *formatValue) Set(s string) error {
	for _, a := range f.allowed {
		if string(a) == s {
			f.value = a
			return nil
		}
	}
	return fmt.Errorf("invalid format %q (choose from %s)", s, f.choices())
}

func (f *formatValue) Type() string {
	return "format"
}

func (f *formatValue) choices() string {
	names := make([]string, len(f.allowed))
	for i, a := range f.allowed {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

// writeResult encodes a single result in the requested format.
func writeResult(w io.Writer, format outputFormat, r schema.Result) error {
	switch format {
	case formatJSON:
		return schema.EncodeJSON(w, r)
	case formatYAML:
		return schema.EncodeYAML(w, r)
	default:
		return schema.EncodeText(w, r)
	}
}
