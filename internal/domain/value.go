package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrMalformedValue is returned when a structured value is not well-formed JSON.
var ErrMalformedValue = errors.New("malformed structured value")

// Value is an opaque structured value: a JSON object, array or scalar.
// The engine stores and returns it verbatim and never interprets its shape.
// A zero-length Value means "absent" and is stored as SQL NULL.
type Value []byte

// EmptyObject returns the `{}` value used for unanswered slots.
func EmptyObject() Value {
	return Value(`{}`)
}

// ParseValue checks that raw is well-formed JSON and returns it in compact form.
// Empty input and a literal null both yield an absent Value. Strings must not
// contain the NUL character (`\u0000`), which jsonb cannot store.
func ParseValue(raw []byte) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, ErrMalformedValue
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, ErrMalformedValue
	}
	if hasNULEscape(buf.Bytes()) {
		return nil, ErrMalformedValue
	}
	return Value(buf.Bytes()), nil
}

// hasNULEscape reports whether a string in the valid JSON text b contains
// the escape \u0000. An escaped backslash followed by "u0000" is not a match.
func hasNULEscape(b []byte) bool {
	inString := false
	for i := 0; i < len(b); i++ {
		switch c := b[i]; {
		case c == '"':
			inString = !inString
		case c == '\\' && inString:
			if i+5 < len(b) && b[i+1] == 'u' && string(b[i+2:i+6]) == "0000" {
				return true
			}
			i++
		}
	}
	return false
}

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool { return len(v) == 0 }

// Equal compares two values by their compact JSON encoding.
func (v Value) Equal(other Value) bool {
	a, errA := ParseValue(v)
	b, errB := ParseValue(other)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// String returns the JSON text, or "null" for an absent value.
func (v Value) String() string {
	if v.IsZero() {
		return "null"
	}
	return string(v)
}

// MarshalJSON emits the stored JSON verbatim.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return []byte("null"), nil
	}
	return []byte(v), nil
}

// UnmarshalJSON stores a compact copy of the raw JSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
