package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is an optional measurement: either a number or absent.
// The zero value is absent. Absent is distinct from NaN — NaN would mean
// "measured, result not a number", absent means "not measured at all".
type Value struct {
	Float64 float64
	Valid   bool
}

// Number returns a present Value holding v.
func Number(v float64) Value {
	return Value{Float64: v, Valid: true}
}

// Absent returns the explicit missing-value marker.
func Absent() Value {
	return Value{}
}

// MarshalJSON encodes absent values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float64)
}

// UnmarshalJSON decodes null as absent and any number as present.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Value{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}
	*v = Number(f)
	return nil
}

func (v Value) String() string {
	if !v.Valid {
		return "absent"
	}
	return fmt.Sprintf("%g", v.Float64)
}
