// Package validparse interprets catalog fields as numbers without treating
// sparse or malformed values as errors. The catalog stores everything as
// text, and fields like CHR_POS or "OR or BETA" are routinely blank, "NR", or
// a free-text annotation; a failed parse is the ordinary outcome, reported as
// a false ok flag (or an invalid null value) rather than an error.
package validparse

import (
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// Uint reports the field as a base-10 unsigned integer, with ok false when
// it is not one. Genomic positions are parsed this way.
func Uint(field string) (uint64, bool) {
	v, err := strconv.ParseUint(field, 10, 64)
	return v, err == nil
}

// Int reports the field as a base-10 signed integer, with ok false when it
// is not one.
func Int(field string) (int64, bool) {
	v, err := strconv.ParseInt(field, 10, 64)
	return v, err == nil
}

// Float reports the field as a floating-point number, with ok false when it
// is not one. Effect sizes (odds ratios and betas) are parsed this way.
func Float(field string) (float64, bool) {
	v, err := strconv.ParseFloat(field, 64)
	return v, err == nil
}

// NullUint wraps Uint for callers that carry absence further, e.g. when
// formatting unparseable positions as blank output cells.
func NullUint(field string) null.Int {
	v, ok := Uint(field)
	return null.NewInt(int64(v), ok)
}

// NullFloat wraps Float in the same way.
func NullFloat(field string) null.Float {
	v, ok := Float(field)
	return null.NewFloat(v, ok)
}
