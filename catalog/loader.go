package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
)

// Load reads a tab-delimited catalog export: the first record is the header,
// every subsequent record is a row, stored verbatim with no type coercion.
func Load(r io.Reader) (*Catalog, error) {
	return LoadDelimited(r, '\t')
}

// LoadDelimited is Load with an explicit delimiter, for exports that were
// re-saved as comma- or semicolon-separated files. Quoting is lazy and rows
// are permitted to differ in width from the header; width mismatches are left
// for the explicit integrity check.
func LoadDelimited(r io.Reader, comma rune) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	if len(records) == 0 {
		return nil, pfx.Err(errors.New("catalog: input contains no header row"))
	}

	return New(records[0], records[1:]), nil
}

// LoadFile is Load over a file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return Load(f)
}

// DetermineDelimiter returns the single most likely rune that delimits the
// values in the reader, defaulting to tab when detection is inconclusive.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
