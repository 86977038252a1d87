package catalog

import (
	"fmt"
	"sort"
)

// RowMask is the set of row indices within one specific Catalog whose field
// at some column passed a validity predicate. A mask computed against one
// Catalog must never be applied against another.
type RowMask map[int]struct{}

// Mask returns the set of row indices whose field at the given column
// satisfies valid. Rows too narrow to have the column are excluded.
func (c *Catalog) Mask(col int, valid func(field string) bool) RowMask {
	mask := make(RowMask)

	for i, row := range c.rows {
		if col < 0 || col >= len(row) {
			continue
		}
		if valid(row[col]) {
			mask[i] = struct{}{}
		}
	}

	return mask
}

// Intersect returns the rows present in both masks. The smaller mask is
// iterated and the larger probed, so cost tracks the smaller side; the result
// set does not depend on argument order.
func Intersect(a, b RowMask) RowMask {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	out := make(RowMask, len(small))
	for i := range small {
		if _, exists := large[i]; exists {
			out[i] = struct{}{}
		}
	}

	return out
}

// Pair is one row's values from two columns that both parsed successfully.
// Row is the index of the source row within the catalog the pair came from.
type Pair[A, B any] struct {
	Row int
	A   A
	B   B
}

// PairedValues emits the parsed values from two columns for exactly those
// rows where both fields independently parse. Each column's valid-row set is
// computed on its own and the two sets intersected, so a row valid in only
// one column is excluded outright rather than half-reported. Pairs are
// emitted in ascending row order. The parse functions must be idempotent:
// each winning row is re-parsed once per column during extraction.
func PairedValues[A, B any](c *Catalog, colA int, parseA func(string) (A, bool), colB int, parseB func(string) (B, bool)) ([]Pair[A, B], error) {
	if colA < 0 || colA >= len(c.header) {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, colA, len(c.header))
	}
	if colB < 0 || colB >= len(c.header) {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, colB, len(c.header))
	}

	maskA := c.Mask(colA, func(field string) bool {
		_, ok := parseA(field)
		return ok
	})
	maskB := c.Mask(colB, func(field string) bool {
		_, ok := parseB(field)
		return ok
	})

	both := Intersect(maskA, maskB)

	rows := make([]int, 0, len(both))
	for i := range both {
		rows = append(rows, i)
	}
	sort.Ints(rows)

	out := make([]Pair[A, B], 0, len(rows))
	for _, i := range rows {
		row := c.rows[i]
		a, _ := parseA(row[colA])
		b, _ := parseB(row[colB])
		out = append(out, Pair[A, B]{Row: i, A: a, B: b})
	}

	return out, nil
}
