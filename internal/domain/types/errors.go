package types

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidClock        = errors.New("invalid clock time")
	ErrInvalidWeeklyHours  = errors.New("invalid weekly hours")
	ErrInvalidTrafficLevel = errors.New("invalid traffic level")

	ErrRouteNotFound       = errors.New("route not found")
	ErrDriverNotFound      = errors.New("driver not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrSimulationNotFound  = errors.New("simulation not found")
	ErrInvalidSimulationID = errors.New("invalid simulation id")
	ErrInvalidID           = errors.New("invalid id")

	ErrFetchFailed  = errors.New("failed to fetch reference data")
	ErrOutcomeWrite = errors.New("failed to record order outcome")
	ErrSaveFailed   = errors.New("failed to save simulation")

	ErrSimulationExists = errors.New("simulation already exists")

	ErrCacheMiss = errors.New("cache miss")
)

// ValidationError carries per-field messages for rejected inputs.
type ValidationError struct {
	Errors map[string]string
}

func NewValidationError(errs map[string]string) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Errors))

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Errors[k]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// FormatError reports a clock string that is not a valid HH:MM time of day.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q must be HH:MM with hour 00-23 and minute 00-59", ErrInvalidClock, e.Value)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidClock
}
