package intent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DevSymphony/regexify/pkg/schema"
)

// Rule associates a keyword set with a pre-written pattern.
// A rule matches a request when every keyword occurs in the lowercased request.
type Rule struct {
	Intent   string
	Keywords []string
	Pattern  string
	Notes    string
	Hint     string // phrase used when listing supported intents
}

// Matches reports whether all keywords are substrings of the lowercased request.
func (r Rule) Matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if !strings.Contains(lowered, kw) {
			return false
		}
	}
	return true
}

// Compile compiles the rule's pattern.
func (r Rule) Compile() (*regexp.Regexp, error) {
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return nil, fmt.Errorf("intent %q: invalid pattern: %w", r.Intent, err)
	}
	return re, nil
}

// Result returns the public projection of the rule.
func (r Rule) Result() schema.Result {
	return schema.Result{
		Intent:  r.Intent,
		Pattern: r.Pattern,
		Notes:   r.Notes,
	}
}

// Catalog is an ordered list of rules. Earlier rules win ties.
type Catalog []Rule

var defaultCatalog = Catalog{
	{
		Intent:   "email",
		Keywords: []string{"email"},
		Pattern:  `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`,
		Notes:    "Basic email matcher for most application validation needs.",
		Hint:     "email",
	},
	{
		Intent:   "date-mmddyyyy",
		Keywords: []string{"date", "mm/dd/yyyy"},
		Pattern:  `^(0[1-9]|1[0-2])/(0[1-9]|[12][0-9]|3[01])/\d{4}$`,
		Notes:    "Matches calendar dates in MM/DD/YYYY format.",
		Hint:     "date MM/DD/YYYY",
	},
	{
		Intent:   "ipv4",
		Keywords: []string{"ipv4"},
		Pattern:  `^((25[0-5]|2[0-4]\d|1?\d?\d)\.){3}(25[0-5]|2[0-4]\d|1?\d?\d)$`,
		Notes:    "Matches dotted IPv4 addresses from 0.0.0.0 to 255.255.255.255.",
		Hint:     "IPv4",
	},
	{
		Intent:   "us-phone",
		Keywords: []string{"phone", "us"},
		Pattern:  `^(?:\+1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}$`,
		Notes:    "Matches common US phone number formats.",
		Hint:     "US phone",
	},
	{
		Intent:   "url",
		Keywords: []string{"url"},
		Pattern:  `^https?://[^\s/$.?#].[^\s]*$`,
		Notes:    "Matches basic HTTP/HTTPS URLs.",
		Hint:     "URL",
	},
}

// Default returns the built-in catalog.
// The returned value must be treated as read-only.
func Default() Catalog {
	return defaultCatalog
}

// Detect returns the first rule whose keywords all occur in request,
// compared case-insensitively. The second result is false when no rule matches.
func (c Catalog) Detect(request string) (Rule, bool) {
	lowered := strings.ToLower(request)
	for _, rule := range c {
		if rule.Matches(lowered) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Detect runs the default catalog against request.
func Detect(request string) (Rule, bool) {
	return defaultCatalog.Detect(request)
}

// Lookup finds a rule by its exact intent name.
func (c Catalog) Lookup(name string) (Rule, bool) {
	for _, rule := range c {
		if rule.Intent == name {
			return rule, true
		}
	}
	return Rule{}, false
}

// Names returns the intent names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, rule := range c {
		names[i] = rule.Intent
	}
	return names
}

// Results projects every rule to its public form, preserving order.
func (c Catalog) Results() []schema.Result {
	results := make([]schema.Result, len(c))
	for i, rule := range c {
		results[i] = rule.Result()
	}
	return results
}

// SupportedHint renders the hints as an English list, e.g. "a, b, or c".
func (c Catalog) SupportedHint() string {
	hints := make([]string, len(c))
	for i, rule := range c {
		hints[i] = rule.Hint
		if hints[i] == "" {
			hints[i] = rule.Intent
		}
	}

	switch len(hints) {
	case 0:
		return ""
	case 1:
		return hints[0]
	case 2:
		return hints[0] + " or " + hints[1]
	}
	return strings.Join(hints[:len(hints)-1], ", ") + ", or " + hints[len(hints)-1]
}

// Validate checks that every rule has keywords, a unique intent and a
// pattern that compiles.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for i, rule := range c {
		if rule.Intent == "" {
			return fmt.Errorf("rule %d: empty intent", i)
		}
		if seen[rule.Intent] {
			return fmt.Errorf("rule %d: duplicate intent %q", i, rule.Intent)
		}
		seen[rule.Intent] = true

		if len(rule.Keywords) == 0 {
			return fmt.Errorf("intent %q: no keywords", rule.Intent)
		}
		for _, kw := range rule.Keywords {
			if kw == "" || kw != strings.ToLower(kw) {
				return fmt.Errorf("intent %q: keyword %q must be non-empty lowercase", rule.Intent, kw)
			}
		}

		if _, err := rule.Compile(); err != nil {
			return err
		}
	}
	return nil
}
