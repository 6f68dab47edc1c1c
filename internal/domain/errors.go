package domain

import "fmt"

// ValidationError reports a field that failed to parse or validate. It is
// returned before any mutation is applied.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
}

// Invalid builds a ValidationError.
func Invalid(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !ValidStatuses[st] {
		return "", Invalid("status", s, "unknown status")
	}
	return st, nil
}

// ParseTrack validates a track string.
func ParseTrack(s string) (Track, error) {
	t := Track(s)
	if !ValidTracks[t] {
		return "", Invalid("track", s, "unknown track")
	}
	return t, nil
}

// ParseOutcome validates an outcome string. Empty is allowed.
func ParseOutcome(s string) (Outcome, error) {
	if s == "" {
		return "", nil
	}
	o := Outcome(s)
	if !ValidOutcomes[o] {
		return "", Invalid("outcome", s, "unknown outcome")
	}
	return o, nil
}
