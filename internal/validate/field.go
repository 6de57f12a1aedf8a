package validate

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Field is a named record attribute whose reads and writes are routed
// through a Validator. A field starts unset; the only transitions are
// unset->set and set->set. A rejected write leaves the stored value
// (or the unset state) unchanged. Every successful read and write is
// logged at info level.
//
// A Field is not safe for concurrent use; it is owned by whoever owns
// the enclosing record.
type Field struct {
	name      string
	validator Validator
	log       zerolog.Logger

	value string
	set   bool
}

// NewField creates an unset field bound to the given validator.
func NewField(name string, validator Validator, log zerolog.Logger) *Field {
	return &Field{
		name:      name,
		validator: validator,
		log:       log.With().Str("field", name).Logger(),
	}
}

// Name returns the field's name.
func (f *Field) Name() string { return f.name }

// IsSet reports whether the field has seen a successful write.
func (f *Field) IsSet() bool { return f.set }

// Set validates the candidate value and stores it on success. On
// failure the *ValidationError is returned unchanged and no store
// happens.
func (f *Field) Set(value interface{}) error {
	if err := f.validator.Validate(value); err != nil {
		return err
	}
	s, ok := value.(string)
	if !ok {
		// Numeric validators accept non-string candidates; store the
		// printed form so Get always yields a string.
		s = fmt.Sprint(value)
	}
	f.log.Info().Msgf("set: %q", s)
	f.value = s
	f.set = true
	return nil
}

// Get returns the stored value. Reading an unset field returns an
// *UnsetFieldError.
func (f *Field) Get() (string, error) {
	if !f.set {
		return "", &UnsetFieldError{Field: f.name}
	}
	f.log.Info().Msgf("get: %q", f.value)
	return f.value, nil
}
