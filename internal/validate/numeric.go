package validate

import "strconv"

func init() {
	Register(&PortValidator{})
	Register(&ProtocolValidator{})
}

// PortValidator accepts transport-layer port numbers, either as an
// integer or as a decimal string, within 0-65535.
type PortValidator struct{}

func (v *PortValidator) Name() string { return "port" }

func (v *PortValidator) Validate(value interface{}) error {
	n, err := asInt(value)
	if err != nil {
		return &ValidationError{Value: value, Reason: "must be a number to be a valid port"}
	}
	if n < 0 || n > 65535 {
		return &ValidationError{Value: value, Reason: "is not a valid port"}
	}
	return nil
}

// ProtocolValidator accepts IP protocol numbers, either as an integer
// or as a decimal string, within 0-255.
type ProtocolValidator struct{}

func (v *ProtocolValidator) Name() string { return "protocol" }

func (v *ProtocolValidator) Validate(value interface{}) error {
	n, err := asInt(value)
	if err != nil {
		return &ValidationError{Value: value, Reason: "must be a number to be a valid protocol"}
	}
	if n < 0 || n > 255 {
		return &ValidationError{Value: value, Reason: "is not a valid protocol"}
	}
	return nil
}

func asInt(value interface{}) (int, error) {
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	default:
		return 0, strconv.ErrSyntax
	}
}
