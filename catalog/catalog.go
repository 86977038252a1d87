// Package catalog provides an in-memory view over a tab-delimited GWAS
// catalog export. A Catalog keeps every field as text; typed interpretation
// happens on demand (see the validparse package), so sparse or malformed
// numeric fields never prevent a catalog from being queried.
package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn indicates that a requested column name has no entry
	// in the catalog's header.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrIndexOutOfRange indicates a row or column ordinal outside the
	// catalog's bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Catalog holds the header and rows of one catalog export, along with a
// name-to-ordinal lookup derived from the header. A Catalog is never mutated
// after construction: FilteredCopy returns a new, independent Catalog.
type Catalog struct {
	header  []string
	rows    [][]string
	indexOf map[string]int
}

// New builds a Catalog from an explicit header and row set. The name lookup
// is derived here and only here. If the header repeats a column name, the
// later occurrence overwrites the earlier one's lookup entry; the earlier
// column remains reachable by ordinal. Row widths are not validated; see
// CheckIntegrity.
func New(header []string, rows [][]string) *Catalog {
	c := &Catalog{
		header:  header,
		rows:    rows,
		indexOf: make(map[string]int, len(header)),
	}

	for i, name := range c.header {
		c.indexOf[name] = i
	}

	return c
}

// RowCount returns the number of associations in the catalog.
func (c *Catalog) RowCount() int {
	return len(c.rows)
}

// ColumnCount returns the number of columns the header declares.
func (c *Catalog) ColumnCount() int {
	return len(c.header)
}

// Header returns the column names in order. Callers must not modify the
// returned slice.
func (c *Catalog) Header() []string {
	return c.header
}

// ColumnIndexOf maps a column name to its ordinal position within a row.
func (c *Catalog) ColumnIndexOf(name string) (int, error) {
	i, exists := c.indexOf[name]
	if !exists {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	return i, nil
}

// Cell returns the field at the given row and column ordinals.
func (c *Catalog) Cell(row, col int) (string, error) {
	if row < 0 || row >= len(c.rows) {
		return "", fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, row, len(c.rows))
	}

	fields := c.rows[row]
	if col < 0 || col >= len(fields) {
		return "", fmt.Errorf("%w: column %d of %d in row %d", ErrIndexOutOfRange, col, len(fields), row)
	}

	return fields[col], nil
}

// Row returns a copy of one row's fields.
func (c *Catalog) Row(row int) ([]string, error) {
	if row < 0 || row >= len(c.rows) {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, row, len(c.rows))
	}

	return append([]string(nil), c.rows[row]...), nil
}

// UniqueValues collects the distinct field values appearing at the given
// column across all rows. Rows too narrow to have the column are skipped; the
// explicit integrity check is the place where that gets reported.
func (c *Catalog) UniqueValues(col int) map[string]struct{} {
	seen := make(map[string]struct{})

	for _, row := range c.rows {
		if col < 0 || col >= len(row) {
			continue
		}
		seen[row[col]] = struct{}{}
	}

	return seen
}

// ValueCounts tallies how many rows carry each distinct value at the given
// column. ValueCounts over the DISEASE/TRAIT column is the per-disease
// association count.
func (c *Catalog) ValueCounts(col int) map[string]int {
	counts := make(map[string]int)

	for _, row := range c.rows {
		if col < 0 || col >= len(row) {
			continue
		}
		counts[row[col]]++
	}

	return counts
}

// FilteredCopy returns a new Catalog containing only the rows whose field at
// the given column equals value, preserving row order. The result shares no
// row storage with the receiver, so both can be queried and further subset
// independently. Subsetting composes: narrow by disease, then by chromosome.
func (c *Catalog) FilteredCopy(col int, value string) *Catalog {
	kept := make([][]string, 0)

	for _, row := range c.rows {
		if col < 0 || col >= len(row) || row[col] != value {
			continue
		}
		kept = append(kept, append([]string(nil), row...))
	}

	return New(c.header, kept)
}
