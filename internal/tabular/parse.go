package tabular

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type keyKind int8

const (
	keyNumber keyKind = iota
	keyText
	keyAbsent
)

// Key is the comparable primitive a cell parses to for sorting. Empty
// cells become the negative-infinity sentinel (first ascending, last
// descending). Values that fail to parse under the column's type (a
// malformed date, a stray word in a numeric column) become absent keys,
// which rank after every valid key regardless of direction. That is a
// deliberate policy: bad data clusters at the end instead of inheriting
// an incidental order.
type Key struct {
	kind keyKind
	num  float64
	str  string
}

// Absent reports whether the key is the missing/unparseable sentinel.
func (k Key) Absent() bool { return k.kind == keyAbsent }

// NumberKey wraps a numeric comparable.
func NumberKey(v float64) Key { return Key{kind: keyNumber, num: v} }

// TextKey wraps a case-folded text comparable.
func TextKey(s string) Key { return Key{kind: keyText, str: strings.ToLower(strings.TrimSpace(s))} }

// AbsentKey is the missing-value sentinel.
func AbsentKey() Key { return Key{kind: keyAbsent} }

// ParseValue converts a cell into its comparable Key for the given
// column type. It is total: no input panics or errors.
func ParseValue(c Cell, t ColumnType) Key {
	if c.IsEmpty() {
		if t == TypeString {
			return TextKey("")
		}
		return NumberKey(math.Inf(-1))
	}
	s := strings.TrimSpace(c.String())
	switch t {
	case TypeNumber:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) {
			return AbsentKey()
		}
		return NumberKey(v)
	case TypeDateDMY:
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return AbsentKey()
		}
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		year, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return AbsentKey()
		}
		// Mirrors Date(year, month-1, day): out-of-range parts roll over.
		ts := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return NumberKey(float64(ts.UnixMilli()))
	case TypeDateISO:
		ts, err := parseISODate(s)
		if err != nil {
			return AbsentKey()
		}
		return NumberKey(float64(ts.UnixMilli()))
	default:
		return TextKey(s)
	}
}

// parseISODate accepts YYYY-M-D with or without zero padding.
func parseISODate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-1-2"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, &time.ParseError{Layout: "2006-01-02", Value: s}
}

// Compare orders two keys of the same column: -1, 0 or 1. Absent keys
// compare equal to each other and the caller places them last.
func (k Key) Compare(o Key) int {
	if k.kind == keyAbsent || o.kind == keyAbsent {
		return 0
	}
	if k.kind == keyNumber && o.kind == keyNumber {
		switch {
		case k.num < o.num:
			return -1
		case k.num > o.num:
			return 1
		default:
			return 0
		}
	}
	if k.kind == keyText && o.kind == keyText {
		return strings.Compare(k.str, o.str)
	}
	// Mixed kinds only happen when a column mixes parse failures with
	// successes across types; rank numbers before text for determinism.
	if k.kind == keyNumber {
		return -1
	}
	return 1
}
