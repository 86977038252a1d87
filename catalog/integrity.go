package catalog

import (
	"errors"
	"fmt"
)

// ErrIntegrity indicates that one or more rows declare a field count
// different from the header's.
var ErrIntegrity = errors.New("row integrity violation")

// CheckIntegrity compares every row's field count to the header length and
// returns the indices of all offending rows. It is a diagnostic the caller
// invokes explicitly; loading and querying never run it implicitly, because a
// handful of malformed upstream rows should not abort ordinary queries.
func (c *Catalog) CheckIntegrity() ([]int, error) {
	var bad []int

	want := len(c.header)
	for i, row := range c.rows {
		if len(row) != want {
			bad = append(bad, i)
		}
	}

	if len(bad) > 0 {
		return bad, fmt.Errorf("%w: %d of %d rows have a field count other than the header's %d", ErrIntegrity, len(bad), len(c.rows), want)
	}

	return nil, nil
}

// DuplicateColumns reports header names that appear more than once. A
// duplicated name leaves only its last occurrence reachable by name (the
// lookup entry is silently overwritten at construction), so callers who care
// can run this check before trusting name-based access.
func (c *Catalog) DuplicateColumns() []string {
	seen := make(map[string]struct{}, len(c.header))
	var dups []string

	for _, name := range c.header {
		if _, exists := seen[name]; exists {
			dups = append(dups, name)
			continue
		}
		seen[name] = struct{}{}
	}

	return dups
}
