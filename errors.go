package go_diveknn

import (
	"errors"
	"fmt"
)

// ErrNoRecords is returned when an operation needs at least one record.
var ErrNoRecords = errors.New("no records")

// UnknownLabelError reports a label outside the fixed label set.
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown label %q: label must be one of %v", e.Label, Labels)
}

// InvalidConfigError reports a rejected classifier setting.
type InvalidConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// DegenerateScalingError reports a feature whose standard deviation is zero,
// which makes standardized distances undefined.
type DegenerateScalingError struct {
	Feature Feature
}

func (e *DegenerateScalingError) Error() string {
	return fmt.Sprintf("degenerate scaling: standard deviation of %s is zero", e.Feature)
}
