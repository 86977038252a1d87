// Package assoc maps the GWAS catalog's documented column names onto a typed
// association record. It is a convenience layer over the untyped catalog: the
// core stays name-agnostic, while drivers that know they are looking at the
// real catalog use these names and records.
package assoc

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"

	"github.com/genrisk/gwascat/validparse"
)

// Column names as they appear in the catalog header.
const (
	PubmedID            = "PUBMEDID"
	DiseaseTrait        = "DISEASE/TRAIT"
	ChrID               = "CHR_ID"
	ChrPos              = "CHR_POS"
	ReportedGenes       = "REPORTED GENE(S)"
	MappedGene          = "MAPPED_GENE"
	StrongestRiskAllele = "STRONGEST SNP-RISK ALLELE"
	SNPs                = "SNPS"
	RiskAlleleFrequency = "RISK ALLELE FREQUENCY"
	PValue              = "P-VALUE"
	ORorBeta            = "OR or BETA"
)

// Chromosomes lists the canonical human chromosome labels in catalog order.
var Chromosomes = []string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
	"13", "14", "15", "16", "17", "18", "19", "20", "21", "22", "X", "Y",
}

// Association is one catalog row under its documented column names. Numeric
// fields stay as text here too; the Parsed* methods interpret them on demand.
type Association struct {
	PubmedID            string `csv:"PUBMEDID"`
	DiseaseTrait        string `csv:"DISEASE/TRAIT"`
	Chromosome          string `csv:"CHR_ID"`
	Position            string `csv:"CHR_POS"`
	ReportedGenes       string `csv:"REPORTED GENE(S)"`
	MappedGene          string `csv:"MAPPED_GENE"`
	StrongestRiskAllele string `csv:"STRONGEST SNP-RISK ALLELE"`
	SNPs                string `csv:"SNPS"`
	RiskAlleleFrequency string `csv:"RISK ALLELE FREQUENCY"`
	PValue              string `csv:"P-VALUE"`
	ORorBeta            string `csv:"OR or BETA"`
}

// ParsedPosition interprets CHR_POS as a genomic coordinate; the result is
// invalid for the multi-locus and missing-position entries the catalog
// contains.
func (a *Association) ParsedPosition() null.Int {
	return validparse.NullUint(a.Position)
}

// EffectSize interprets "OR or BETA" as a number; invalid when the field is
// blank or annotated free text.
func (a *Association) EffectSize() null.Float {
	return validparse.NullFloat(a.ORorBeta)
}

// Import unmarshals a tab-delimited catalog export into typed records. Unlike
// the untyped loader, this path inherits gocsv's strictness about row widths,
// so it suits already-clean exports.
func Import(fileBytes []byte) ([]*Association, error) {
	records := []*Association{}

	// Tell gocsv to use tab as the delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		r.LazyQuotes = true
		return r
	})

	if err := gocsv.UnmarshalBytes(fileBytes, &records); err != nil {
		return nil, pfx.Err(err)
	}

	return records, nil
}
