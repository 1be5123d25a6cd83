// Package tabular implements the in-memory exploration engine for
// spreadsheet snapshots: column type inference, filtering, sorting,
// categorical aggregation and pagination. Every function in this package
// is pure and total: malformed input degrades to a comparable value or
// an empty result, never to a panic or an error mid-pipeline.
package tabular

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ColumnType is the inferred semantic type of a column.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeEmpty
	TypeNumber
	TypeDateDMY // D/M/YYYY
	TypeDateISO // YYYY-M-D
)

// IsDate reports whether the type is one of the two date variants.
func (t ColumnType) IsDate() bool {
	return t == TypeDateDMY || t == TypeDateISO
}

func (t ColumnType) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeNumber:
		return "number"
	case TypeDateDMY:
		return "date-dmy"
	case TypeDateISO:
		return "date-iso"
	default:
		return "string"
	}
}

type cellKind int8

const (
	cellEmpty cellKind = iota
	cellNumber
	cellText
)

// Cell is a single spreadsheet value: empty, a number, or text.
// Snapshots arrive as untyped JSON; decoding collapses null and "" to
// Empty so the rest of the engine works over a closed set.
type Cell struct {
	kind cellKind
	num  float64
	text string
}

// EmptyCell is the zero Cell.
func EmptyCell() Cell { return Cell{} }

// NumberCell wraps a numeric value.
func NumberCell(v float64) Cell { return Cell{kind: cellNumber, num: v} }

// TextCell wraps a string value. The empty string maps to an empty cell.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{kind: cellText, text: s}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.kind == cellEmpty }

// String renders the cell the way the snapshot's producer would: numbers
// without a trailing ".0", empty cells as "".
func (c Cell) String() string {
	switch c.kind {
	case cellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case cellText:
		return c.text
	default:
		return ""
	}
}

// UnmarshalJSON accepts null, numbers, strings and booleans.
func (c *Cell) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null":
		*c = Cell{}
	case s == "true":
		*c = Cell{kind: cellText, text: "true"}
	case s == "false":
		*c = Cell{kind: cellText, text: "false"}
	case len(s) > 0 && s[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = TextCell(v)
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = NumberCell(v)
	}
	return nil
}

// MarshalJSON renders the cell back to its natural JSON form.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case cellNumber:
		return json.Marshal(c.num)
	case cellText:
		return json.Marshal(c.text)
	default:
		return []byte("null"), nil
	}
}

// Row is one data row of a table.
type Row []Cell

// Table is a decoded spreadsheet snapshot: sanitized headers, data rows
// normalized to the header width, and the inferred type of each column.
// Tables are immutable once built; the pipeline stages return new row
// slices instead of mutating them.
type Table struct {
	Headers []string
	Rows    []Row
	Types   []ColumnType
}

// Empty reports whether the table carries no columns at all.
func (t Table) Empty() bool { return len(t.Headers) == 0 }

// NewTable builds a Table from raw rows. Row 0 is the header; blank
// header cells become "Campo N". Short data rows are padded with empty
// cells and extra cells are dropped so every row matches the header
// width. Column types are inferred from the data rows.
func NewTable(raw []Row) Table {
	if len(raw) == 0 {
		return Table{}
	}
	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		name := strings.TrimSpace(h.String())
		if name == "" {
			name = fmt.Sprintf("Campo %d", i+1)
		}
		headers[i] = name
	}

	rows := make([]Row, 0, len(raw)-1)
	for _, r := range raw[1:] {
		row := make(Row, len(headers))
		copy(row, r)
		rows = append(rows, row)
	}

	types := make([]ColumnType, len(headers))
	for i := range headers {
		types[i] = InferColumnType(rows, i)
	}

	return Table{Headers: headers, Rows: rows, Types: types}
}

// FromStrings builds a Table from a plain 2-D string array, row 0 being
// the header. This is the entry point for callers holding an already
// decoded snapshot payload.
func FromStrings(data [][]string) Table {
	if len(data) == 0 {
		return Table{}
	}
	raw := make([]Row, len(data))
	for i, r := range data {
		row := make(Row, len(r))
		for j, s := range r {
			row[j] = TextCell(s)
		}
		raw[i] = row
	}
	return NewTable(raw)
}

// DecodeSnapshot parses a string-encoded 2-D array (the Project dataJson
// payload) into a Table. A malformed or empty payload yields the empty
// Table and ok=false; it never returns an error, the caller surfaces a
// "no data" state instead.
func DecodeSnapshot(dataJSON string) (Table, bool) {
	if strings.TrimSpace(dataJSON) == "" {
		return Table{}, false
	}
	var raw []Row
	if err := json.Unmarshal([]byte(dataJSON), &raw); err != nil {
		return Table{}, false
	}
	if len(raw) == 0 {
		return Table{}, false
	}
	return NewTable(raw), true
}
