// Package validate implements the field validation contract: named
// validators that accept or reject candidate values, and validated
// fields that route every read and write through a validator.
package validate

import "fmt"

// Validator decides whether a candidate value is acceptable for a
// specific semantic type. Returning nil means the candidate is
// accepted; a rejection is reported as a *ValidationError.
type Validator interface {
	// Name is the identifier the validator is registered under, e.g. "ipv4".
	Name() string
	Validate(value interface{}) error
}

// registry holds the mapping of validator names to their implementations.
var registry = make(map[string]Validator)

// Register adds a validator to the registry.
func Register(v Validator) {
	if _, exists := registry[v.Name()]; exists {
		panic(fmt.Sprintf("validator '%s' already registered", v.Name()))
	}
	registry[v.Name()] = v
}

// Lookup returns the validator registered under the given name.
func Lookup(name string) (Validator, error) {
	v, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown validator: '%s'", name)
	}
	return v, nil
}

// Names returns the names of all registered validators.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
