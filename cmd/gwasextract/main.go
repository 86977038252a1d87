// gwasextract emits paired genomic positions and effect sizes from a GWAS
// catalog export. A row contributes a pair only when its CHR_POS and
// "OR or BETA" fields both parse as numbers; rows valid in just one of the
// two are excluded outright. With no disease named, it sweeps every disease
// and chromosome and writes the pairs that clear --min to a CSV.
package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/genrisk/gwascat"
	"github.com/genrisk/gwascat/assoc"
	_ "github.com/genrisk/gwascat/buildinfoprint"
	"github.com/genrisk/gwascat/catalog"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	var (
		file        string
		disease     string
		chromosome  string
		output      string
		minPairs    int
		plotHist    bool
		describe    bool
		keepInvalid bool
	)
	flag.StringVar(&file, "file", "", "Local path or URL of the GWAS catalog TSV")
	flag.StringVar(&disease, "disease", "", "Optional: extract only this DISEASE/TRAIT value; if empty, every disease is swept")
	flag.StringVar(&chromosome, "chromosome", "", "Optional: extract only this CHR_ID value; if empty, chromosomes 1-22, X, and Y are swept")
	flag.StringVar(&output, "out", "", "Optional: path for CSV output (disease,chromosome,position,effect_size); stdout if empty")
	flag.IntVar(&minPairs, "min", 0, "Only emit disease/chromosome subsets with more than this many pairs")
	flag.BoolVar(&plotHist, "hist", false, "Print a console histogram of the extracted effect sizes")
	flag.BoolVar(&describe, "stats", false, "Print summary statistics of the extracted pairs")
	flag.BoolVar(&keepInvalid, "keep-invalid", false, "Also print every row of the narrowed catalog with blanks where a field did not parse (requires --disease)")
	flag.Parse()

	if file == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --file")
	}

	if keepInvalid && disease == "" {
		flag.PrintDefaults()
		log.Fatalln("--keep-invalid requires --disease")
	}

	fileBytes, err := gwascat.OpenFileOrURL(file)
	if err != nil {
		log.Fatalln(err)
	}

	cat, err := catalog.Load(bytes.NewReader(fileBytes))
	if err != nil {
		log.Fatalln(err)
	}

	if err := run(cat, disease, chromosome, output, minPairs, plotHist, describe, keepInvalid); err != nil {
		log.Fatalln(err)
	}
}

func run(cat *catalog.Catalog, disease, chromosome, output string, minPairs int, plotHist, describe, keepInvalid bool) error {
	diseaseCol, err := cat.ColumnIndexOf(assoc.DiseaseTrait)
	if err != nil {
		return err
	}
	chrCol, err := cat.ColumnIndexOf(assoc.ChrID)
	if err != nil {
		return err
	}
	posCol, err := cat.ColumnIndexOf(assoc.ChrPos)
	if err != nil {
		return err
	}
	esCol, err := cat.ColumnIndexOf(assoc.ORorBeta)
	if err != nil {
		return err
	}

	diseases := []string{disease}
	if disease == "" {
		diseases = sortedValues(cat.UniqueValues(diseaseCol))
	}

	chromosomes := assoc.Chromosomes
	if chromosome != "" {
		chromosomes = []string{chromosome}
	}

	w, closer, err := openOutput(output)
	if err != nil {
		return err
	}
	defer closer()
	defer w.Flush()

	allEffects := make([]float64, 0)
	allPositions := make([]float64, 0)

	for _, diseaseName := range diseases {
		byDisease := cat.FilteredCopy(diseaseCol, diseaseName)

		if keepInvalid {
			if err := printAllRows(byDisease, posCol, esCol); err != nil {
				return err
			}
		}

		for _, chr := range chromosomes {
			byChr := byDisease.FilteredCopy(chrCol, chr)

			pairs, err := extract(byChr, posCol, esCol)
			if err != nil {
				return err
			}
			if len(pairs) < 1 {
				continue
			}

			log.Printf("%s:%s has %d positioned associations\n", diseaseName, chr, len(pairs))

			for _, pair := range pairs {
				allPositions = append(allPositions, float64(pair.A))
				allEffects = append(allEffects, pair.B)
			}

			if len(pairs) <= minPairs {
				continue
			}

			for _, pair := range pairs {
				record := []string{
					diseaseName,
					chr,
					fmt.Sprintf("%d", pair.A),
					fmt.Sprintf("%g", pair.B),
				}
				if err := w.Write(record); err != nil {
					return err
				}
			}
		}
	}

	if describe {
		if err := describePairs(allPositions, allEffects); err != nil {
			return err
		}
	}

	if plotHist {
		if err := printHistogram(allEffects); err != nil {
			return err
		}
	}

	return nil
}

func sortedValues(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	sort.Strings(out)

	return out
}

func openOutput(path string) (*csv.Writer, func() error, error) {
	if path == "" {
		return csv.NewWriter(STDOUT), func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return csv.NewWriter(f), f.Close, nil
}
