package seawater

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidSelectorError reports an unrecognized discrete selector value
// (variant tag, sub-equation id, accuracy level, region code, output mode).
// Selectors are never silently defaulted when an explicit value is given.
type InvalidSelectorError struct {
	Selector string // which selector axis, e.g. "variant", "equation", "region"
	Value    string
	Allowed  []string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("seawater: unknown %s %q (allowed: %s)",
		e.Selector, e.Value, strings.Join(e.Allowed, ", "))
}

// ShapeMismatchError reports input slices that are not mutually
// broadcastable: every non-nil input must have length 1 or the common length.
type ShapeMismatchError struct {
	Input string
	Len   int
	Want  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("seawater: input %s has length %d, not broadcastable to %d",
		e.Input, e.Len, e.Want)
}

// MissingInputError reports a physical input a variant cannot do without
// (e.g. frequency for absorption).
type MissingInputError struct {
	Input string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("seawater: required input %s is missing", e.Input)
}

// DomainError reports an input outside the mathematical domain of a
// conversion (not merely outside a formula's fitted range; see
// ValidateDomain for the latter).
type DomainError struct {
	Input  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("seawater: %s=%g out of domain: %s", e.Input, e.Value, e.Reason)
}

func invalidSelector(selector, value string, allowed []string) error {
	sorted := append([]string(nil), allowed...)
	sort.Strings(sorted)
	return &InvalidSelectorError{Selector: selector, Value: value, Allowed: sorted}
}
