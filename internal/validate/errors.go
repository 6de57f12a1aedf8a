package validate

import "fmt"

// ValidationError is returned when a candidate value is rejected by a
// Validator. It carries the rejected value and the reason, so the
// rendered message reads "<value> <reason>".
type ValidationError struct {
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v %s", e.Value, e.Reason)
}

// UnsetFieldError is returned when a validated field is read before any
// successful write.
type UnsetFieldError struct {
	Field string
}

func (e *UnsetFieldError) Error() string {
	return fmt.Sprintf("field '%s' has not been set", e.Field)
}
