// gwassummary summarizes a GWAS catalog export: total association count,
// per-disease tallies, and unique rsID counts, optionally after narrowing to
// one disease and one chromosome.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/genrisk/gwascat"
	"github.com/genrisk/gwascat/assoc"
	_ "github.com/genrisk/gwascat/buildinfoprint"
	"github.com/genrisk/gwascat/catalog"
	"github.com/genrisk/gwascat/snp"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	var (
		file       string
		disease    string
		chromosome string
		counts     bool
		check      bool
		sniff      bool
	)
	flag.StringVar(&file, "file", "", "Local path or URL of the GWAS catalog TSV")
	flag.StringVar(&disease, "disease", "", "Optional: restrict the summary to one DISEASE/TRAIT value")
	flag.StringVar(&chromosome, "chromosome", "", "Optional: restrict the summary to one CHR_ID value")
	flag.BoolVar(&counts, "counts", false, "Print the number of associations for every disease")
	flag.BoolVar(&check, "check", false, "Run the row-width integrity check before summarizing")
	flag.BoolVar(&sniff, "sniff", false, "Detect the delimiter instead of assuming tab")
	flag.Parse()

	if file == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --file")
	}

	fileBytes, err := gwascat.OpenFileOrURL(file)
	if err != nil {
		log.Fatalln(err)
	}

	delim := '\t'
	if sniff {
		delim = catalog.DetermineDelimiter(bytes.NewReader(fileBytes))
		log.Printf("Detected delimiter %q\n", delim)
	}

	cat, err := catalog.LoadDelimited(bytes.NewReader(fileBytes), delim)
	if err != nil {
		log.Fatalln(err)
	}

	if check {
		if bad, err := cat.CheckIntegrity(); err != nil {
			log.Printf("%v; offending rows: %v\n", err, bad)
		}
		if dups := cat.DuplicateColumns(); len(dups) > 0 {
			log.Printf("Duplicated column names (only the last of each is reachable by name): %v\n", dups)
		}
	}

	if err := run(cat, disease, chromosome, counts); err != nil {
		log.Fatalln(err)
	}
}

func run(cat *catalog.Catalog, disease, chromosome string, counts bool) error {
	if err := printSummary(cat, "catalog"); err != nil {
		return err
	}

	if counts {
		if err := printDiseaseCounts(cat); err != nil {
			return err
		}
	}

	if disease != "" {
		col, err := cat.ColumnIndexOf(assoc.DiseaseTrait)
		if err != nil {
			return err
		}
		cat = cat.FilteredCopy(col, disease)

		if err := printSummary(cat, disease); err != nil {
			return err
		}

		rsids, err := uniqueRSIDs(cat)
		if err != nil {
			return err
		}
		fmt.Fprintf(STDOUT, "Unique rsIDs for %s: %d\n", disease, len(rsids))
	}

	if chromosome != "" {
		col, err := cat.ColumnIndexOf(assoc.ChrID)
		if err != nil {
			return err
		}
		cat = cat.FilteredCopy(col, chromosome)

		if err := printSummary(cat, "chromosome "+chromosome); err != nil {
			return err
		}
	}

	return nil
}

// printSummary reports the association count and the number of diseases with
// 10 or more associations.
func printSummary(cat *catalog.Catalog, label string) error {
	col, err := cat.ColumnIndexOf(assoc.DiseaseTrait)
	if err != nil {
		return err
	}

	wellStudied := 0
	for _, n := range cat.ValueCounts(col) {
		if n > 9 {
			wellStudied++
		}
	}

	fmt.Fprintf(STDOUT, "%s: associations %d\tdiseases with >9 associations %d\n", label, cat.RowCount(), wellStudied)

	return nil
}

func printDiseaseCounts(cat *catalog.Catalog) error {
	col, err := cat.ColumnIndexOf(assoc.DiseaseTrait)
	if err != nil {
		return err
	}

	counts := cat.ValueCounts(col)

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(STDOUT, "Number of associations in each disease:")
	for _, name := range names {
		fmt.Fprintf(STDOUT, "%s\t%d\n", name, counts[name])
	}

	return nil
}

// uniqueRSIDs collects the distinct SNPS values that look like a single
// rsID, discarding multi-SNP and haplotype entries.
func uniqueRSIDs(cat *catalog.Catalog) (map[string]struct{}, error) {
	col, err := cat.ColumnIndexOf(assoc.SNPs)
	if err != nil {
		return nil, err
	}

	rsids := make(map[string]struct{})
	for value := range cat.UniqueValues(col) {
		if snp.IsRSID(value) {
			rsids[value] = struct{}{}
		}
	}

	return rsids, nil
}
