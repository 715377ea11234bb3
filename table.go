package donate

import (
	"encoding/json"
	"slices"
)

// Value is a single table cell. It holds either a string or the explicit
// absence marker returned by Null. The zero Value is null.
type Value struct {
	s     string
	valid bool
}

// Text returns a Value holding s.
func Text(s string) Value {
	return Value{s: s, valid: true}
}

// Null returns the absence marker.
func Null() Value {
	return Value{}
}

// IsNull reports whether v is the absence marker.
func (v Value) IsNull() bool {
	return !v.valid
}

// String returns the cell text, or an empty string for null.
func (v Value) String() string {
	return v.s
}

// MarshalJSON encodes v as a JSON string, or null for the absence marker.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.s)
}

// UnmarshalJSON decodes a JSON string or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Null()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = Text(s)
	return nil
}

// Row is a single record. Its first cell is the record kind tag.
type Row []Value

// Table is an ordered collection of rows sharing one column schema.
// Rows keep the order in which they were found in the source file.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTable returns an empty table with the given schema.
func NewTable(name string, columns ...string) *Table {
	return &Table{
		Name:    name,
		Columns: slices.Clone(columns),
		Rows:    []Row{},
	}
}

// Append adds a row. Callers are expected to supply exactly one value per
// column; Validate reports rows that do not.
func (t *Table) Append(values ...Value) {
	t.Rows = append(t.Rows, Row(values))
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Validate returns an error if any row does not match the column schema.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return Errorf(EINVALID, "table %q has no columns", t.Name)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return Errorf(EINVALID, "table %q row %d has %d values, want %d", t.Name, i, len(row), len(t.Columns))
		}
	}
	return nil
}

// Strings returns the rows as plain strings, with null cells rendered as
// the given placeholder.
func (t *Table) Strings(null string) [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v.IsNull() {
				cells[i] = null
				continue
			}
			cells[i] = v.String()
		}
		out = append(out, cells)
	}
	return out
}
