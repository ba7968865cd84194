package whittle

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type toggleState uint8

const (
	toggleAbsent toggleState = iota
	toggleFlag
	toggleDetail
)

// Toggle is the boolean-or-object convention callers use to configure a
// pipeline stage. It is a three-variant sum: not specified, a bare on/off
// flag, or a detail record. The distinction between "absent" and "false"
// is load-bearing: an absent stage runs with defaults, a false one is
// skipped, and a detail record always means the stage is on.
//
// The zero value is the absent variant.
type Toggle[T any] struct {
	state  toggleState
	flag   bool
	detail T
}

// On is the enabled-with-defaults flag variant.
func On[T any]() Toggle[T] {
	return Toggle[T]{state: toggleFlag, flag: true}
}

// Off is the disabled flag variant.
func Off[T any]() Toggle[T] {
	return Toggle[T]{state: toggleFlag, flag: false}
}

// With is the detail variant; the stage is enabled and detail overrides
// defaults field by field.
func With[T any](detail T) Toggle[T] {
	return Toggle[T]{state: toggleDetail, detail: detail}
}

// Resolve collapses the three variants into "does the stage run" plus the
// detail record when one was given. Absent and a true flag both enable the
// stage with no detail; only a false flag disables it.
func (t Toggle[T]) Resolve() (detail *T, enabled bool) {
	switch t.state {
	case toggleFlag:
		return nil, t.flag
	case toggleDetail:
		d := t.detail
		return &d, true
	default:
		return nil, true
	}
}

// UnmarshalJSON accepts true, false, or a detail object. A JSON null is
// the absent variant, not false: json.Unmarshal leaves a bool untouched on
// null, so it has to be caught before the flag decode.
func (t *Toggle[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Toggle[T]{}
		return nil
	}
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*t = Toggle[T]{state: toggleFlag, flag: flag}
		return nil
	}
	var detail T
	if err := json.Unmarshal(data, &detail); err != nil {
		return fmt.Errorf("toggle accepts a boolean or an object: %w", err)
	}
	*t = Toggle[T]{state: toggleDetail, detail: detail}
	return nil
}

// MarshalJSON writes the variant back in the caller convention; the absent
// variant marshals as null.
func (t Toggle[T]) MarshalJSON() ([]byte, error) {
	switch t.state {
	case toggleFlag:
		return json.Marshal(t.flag)
	case toggleDetail:
		return json.Marshal(t.detail)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalTOML accepts a boolean or a table, so configuration files keep
// the same boolean-or-object convention as the JSON surface. Tables arrive
// as generic maps and are re-decoded through the detail type's field tags.
func (t *Toggle[T]) UnmarshalTOML(v any) error {
	if flag, ok := v.(bool); ok {
		*t = Toggle[T]{state: toggleFlag, flag: flag}
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("toggle accepts a boolean or a table: %w", err)
	}
	var detail T
	if err := json.Unmarshal(raw, &detail); err != nil {
		return fmt.Errorf("toggle accepts a boolean or a table: %w", err)
	}
	*t = Toggle[T]{state: toggleDetail, detail: detail}
	return nil
}
