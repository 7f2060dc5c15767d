package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Result is the public view of a catalog rule.
// JSON output carries exactly these three keys.
type Result struct {
	Intent  string `json:"intent" yaml:"intent"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Notes   string `json:"notes" yaml:"notes"`
}

// IntentList wraps a list of results for structured output.
type IntentList struct {
	Intents []Result `json:"intents" yaml:"intents"`
}

// EncodeText writes the three-line text form of r.
func EncodeText(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "intent: %s\npattern: %s\nnotes: %s\n", r.Intent, r.Pattern, r.Notes)
	return err
}

// EncodeJSON writes v as 2-space indented JSON followed by a newline.
// HTML escaping is disabled so patterns are printed verbatim.
func EncodeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeYAML writes v as a YAML document.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
