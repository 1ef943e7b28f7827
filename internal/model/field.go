package model

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Field is an optional update field that distinguishes three states:
// absent (leave the stored value unchanged), null or empty string (clear the
// stored value), and a concrete value (overwrite the stored value).
//
// encoding/json only calls UnmarshalJSON for keys present in the input, so a
// zero Field means the key was omitted entirely.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Set returns a Field carrying a concrete value.
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: v}
}

// Clear returns a Field that clears the stored value.
func Clear[T any]() Field[T] {
	return Field[T]{Present: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(data, jsonNull) || bytes.Equal(data, []byte(`""`)) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || f.Null {
		return jsonNull, nil
	}
	return json.Marshal(f.Value)
}
