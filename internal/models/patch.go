package models

import "encoding/json"

// Optional distinguishes three states of a JSON field: absent (Present is
// false, leave the value unchanged), present with a value, and explicit null
// (Present is true, Value is nil, clear the value).
type Optional[T any] struct {
	Present bool
	Value   *T
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: &v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

// UnmarshalJSON is only invoked for fields that appear in the document, so
// Present records exactly that.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON round-trips the value; an absent field marshals as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
