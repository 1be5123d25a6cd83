package tabular

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// inferSampleSize is how many data rows the type sniffer inspects per
// column. A column that only turns numeric after this many rows is
// classified as string, a documented limitation kept for parity with
// the snapshot producer.
const inferSampleSize = 10

var (
	dmyPattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	isoPattern = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
)

// DetectType classifies a single cell value.
func DetectType(c Cell) ColumnType {
	if c.IsEmpty() {
		return TypeEmpty
	}
	if c.kind == cellNumber {
		return TypeNumber
	}
	s := strings.TrimSpace(c.text)
	if s == "" {
		return TypeEmpty
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) {
		return TypeNumber
	}
	if dmyPattern.MatchString(s) {
		return TypeDateDMY
	}
	if isoPattern.MatchString(s) {
		return TypeDateISO
	}
	return TypeString
}

// InferColumnType returns the type of column idx, decided from a sample
// of the first rows: the first classification that is neither empty nor
// plain string wins; otherwise the column is a string column.
func InferColumnType(rows []Row, idx int) ColumnType {
	limit := len(rows)
	if limit > inferSampleSize {
		limit = inferSampleSize
	}
	for i := 0; i < limit; i++ {
		if idx >= len(rows[i]) {
			continue
		}
		t := DetectType(rows[i][idx])
		if t != TypeEmpty && t != TypeString {
			return t
		}
	}
	return TypeString
}

// YearOf extracts the 4-digit year from a date-typed cell: the third
// slash segment for D/M/YYYY, the first four characters for ISO dates.
// Non-date types and empty cells yield "".
func YearOf(c Cell, t ColumnType) string {
	if c.IsEmpty() {
		return ""
	}
	s := strings.TrimSpace(c.String())
	switch t {
	case TypeDateDMY:
		parts := strings.Split(s, "/")
		if len(parts) == 3 {
			return parts[2]
		}
	case TypeDateISO:
		if len(s) >= 4 {
			return s[:4]
		}
	}
	return ""
}
