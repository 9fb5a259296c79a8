// Package tabular defines the row shape returned by tabular filtering.
// A Row keeps its column order so that JSON objects are emitted with keys in
// the order the columns appeared in the source file.
package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Row is a single record with ordered columns. Columns and Values are
// parallel slices.
type Row struct {
	Columns []string
	Values  []any
}

// Get returns the value stored under column and whether it exists.
func (r Row) Get(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

// MarshalJSON encodes the row as a JSON object preserving column order.
// NaN and infinite floats are emitted as null.
func (r Row) MarshalJSON() ([]byte, error) {
	if len(r.Columns) != len(r.Values) {
		return nil, fmt.Errorf("row has %d columns but %d values", len(r.Columns), len(r.Values))
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, fmt.Errorf("encoding column %q: %w", col, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(normalize(r.Values[i]))
		if err != nil {
			return nil, fmt.Errorf("encoding value of column %q: %w", col, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func normalize(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v
}
