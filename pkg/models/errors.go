package models

import "fmt"

// ValidationError rejects bad caller input: an empty portfolio, a holding
// set with no value, or an instrument the catalog does not know. The request
// fails outright; nothing is defaulted.
type ValidationError struct {
	Field  string // e.g., "holdings"
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// PolicyResolutionError reports a risk-tolerance tier no policy exists for.
type PolicyResolutionError struct {
	Tier string
}

func (e *PolicyResolutionError) Error() string {
	return fmt.Sprintf("unknown risk tolerance tier %q", e.Tier)
}
