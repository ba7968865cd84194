package whittle

import "fmt"

// ConfigError reports an option that was present but invalid. The call is
// rejected before any parsing or transformation happens; there is no
// partial result.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid option %s = %q: %s", e.Field, e.Value, e.Reason)
}

// MarshalError reports that the boundary serialization of a result failed:
// the tree held a value the output encoding cannot represent.
type MarshalError struct {
	Err error
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("cannot serialize parse result: %v", e.Err)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
