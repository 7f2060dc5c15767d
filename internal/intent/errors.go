package intent

import "fmt"

// NoMatchError is returned by Resolve when no rule matches a request.
type NoMatchError struct {
	Request   string
	Supported string // human list of supported intents
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no supported pattern detected. Try %s.", e.Supported)
}

// Resolve is Detect with the miss reported as a *NoMatchError.
func (c Catalog) Resolve(request string) (Rule, error) {
	rule, ok := c.Detect(request)
	if !ok {
		return Rule{}, &NoMatchError{Request: request, Supported: c.SupportedHint()}
	}
	return rule, nil
}
