package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// ipv4Pattern accepts four dot-separated groups of 1-3 decimal digits.
// Octet values are deliberately NOT bounded to 0-255: this is a shape
// check only, and callers that need range checking use "ipv4_strict".
var ipv4Pattern = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{1,3}){3}$`)

func init() {
	Register(&IPv4Validator{})
	Register(&IPv4StrictValidator{})
}

// IPv4Validator accepts strings shaped like a dotted-quad IPv4 address.
type IPv4Validator struct{}

func (v *IPv4Validator) Name() string { return "ipv4" }

// Validate rejects non-string candidates and strings that do not match
// the dotted-quad shape.
func (v *IPv4Validator) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return &ValidationError{Value: value, Reason: "must be a string to be a valid ipv4 address"}
	}
	if !ipv4Pattern.MatchString(s) {
		return &ValidationError{Value: value, Reason: "is not a valid ipv4 address"}
	}
	return nil
}

// IPv4StrictValidator accepts dotted-quad strings whose octets are all
// within 0-255.
type IPv4StrictValidator struct{}

func (v *IPv4StrictValidator) Name() string { return "ipv4_strict" }

func (v *IPv4StrictValidator) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return &ValidationError{Value: value, Reason: "must be a string to be a valid ipv4 address"}
	}
	if !ipv4Pattern.MatchString(s) {
		return &ValidationError{Value: value, Reason: "is not a valid ipv4 address"}
	}
	for _, octet := range strings.Split(s, ".") {
		n, err := strconv.Atoi(octet)
		if err != nil || n > 255 {
			return &ValidationError{Value: value, Reason: "is not a valid ipv4 address"}
		}
	}
	return nil
}
