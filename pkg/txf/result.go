package txf

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidToken is wrapped by Result.Err when a result carries errors.
var ErrInvalidToken = errors.New("invalid token")

// Result is the verdict of a validator. Errors block use of the record;
// warnings are advisory. Validators never panic or return Go errors for
// malformed input: every problem lands here.
type Result struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether the result has no errors.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Errorf appends a formatted error.
func (r *Result) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Warnf appends a formatted warning.
func (r *Result) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Merge appends the errors and warnings of o.
func (r *Result) Merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// Err returns nil for a valid result, otherwise an error wrapping
// ErrInvalidToken that lists every error.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidToken, strings.Join(r.Errors, "; "))
}

// MarshalJSON encodes the result as {isValid, errors?, warnings?}.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		IsValid  bool     `json:"isValid"`
		Errors   []string `json:"errors,omitempty"`
		Warnings []string `json:"warnings,omitempty"`
	}{r.IsValid(), r.Errors, r.Warnings})
}
