// Package snp holds small predicates over SNP identifier strings.
package snp

import "strings"

// IsRSID reports whether value looks like a single rsID: an "rs" prefix and
// no embedded whitespace or semicolon. Catalog entries describing multi-SNP
// signals join several identifiers with "; " and are rejected here, as are
// haplotype and interaction notations.
func IsRSID(value string) bool {
	if !strings.HasPrefix(value, "rs") {
		return false
	}

	return !strings.ContainsAny(value, " \t;")
}
