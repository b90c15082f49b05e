package models

import (
	"bytes"
	"encoding/json"
)

// DType classifies a column as integer, decimal, or text.
type DType string

const (
	DTypeInt    DType = "int"
	DTypeFloat  DType = "float"
	DTypeString DType = "string"
)

// DTypes maps column names to their inferred types while preserving the
// master table's column order, the way a plain map cannot.
type DTypes struct {
	// Columns lists the column names in table order.
	Columns []string
	// ByName maps each column name to its type.
	ByName map[string]DType
}

// NewDTypes returns an empty type map.
func NewDTypes() *DTypes {
	return &DTypes{ByName: make(map[string]DType)}
}

// Set records the type for col, appending col to the order on first use.
func (d *DTypes) Set(col string, t DType) {
	if _, ok := d.ByName[col]; !ok {
		d.Columns = append(d.Columns, col)
	}
	d.ByName[col] = t
}

// Get returns the type recorded for col.
func (d *DTypes) Get(col string) (DType, bool) {
	t, ok := d.ByName[col]
	return t, ok
}

// Len returns the number of typed columns.
func (d *DTypes) Len() int {
	return len(d.Columns)
}

// MarshalJSON emits the map as a JSON object with keys in column order.
func (d *DTypes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range d.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(string(d.ByName[col]))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
