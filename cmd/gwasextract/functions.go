package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/guregu/null.v3"

	"github.com/genrisk/gwascat/catalog"
	"github.com/genrisk/gwascat/validparse"
)

// extract pairs up the position and effect-size fields for the rows where
// both parse, sorted by ascending genomic position.
func extract(sub *catalog.Catalog, posCol, esCol int) ([]catalog.Pair[uint64, float64], error) {
	pairs, err := catalog.PairedValues(sub, posCol, validparse.Uint, esCol, validparse.Float)
	if err != nil {
		return nil, err
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].A < pairs[j].A
	})

	return pairs, nil
}

// printAllRows emits every row of the narrowed catalog with the position and
// effect-size fields blank where they did not parse, so sparse rows remain
// visible instead of being dropped by the both-or-neither pairing.
func printAllRows(sub *catalog.Catalog, posCol, esCol int) error {
	for i := 0; i < sub.RowCount(); i++ {
		pos := null.Int{}
		if v, err := sub.Cell(i, posCol); err == nil {
			pos = validparse.NullUint(v)
		}

		es := null.Float{}
		if v, err := sub.Cell(i, esCol); err == nil {
			es = validparse.NullFloat(v)
		}

		fmt.Fprintf(STDOUT, "%d\t%s\t%s\n", i, NullIntFormatter(pos), NullFloatFormatter(es))
	}

	return nil
}

func describePairs(positions, effects []float64) error {
	data := stats.LoadRawData(effects)

	if data.Len() < 1 {
		fmt.Fprintln(STDOUT, "No pairs extracted")
		return nil
	}

	mean, err := data.Mean()
	if err != nil {
		return err
	}

	sd, err := data.StandardDeviation()
	if err != nil {
		return err
	}

	median, err := data.Median()
	if err != nil {
		return err
	}

	fmt.Fprintf(STDOUT, "Effect sizes: n %d\tmean %.3f\tsd %.3f\tmedian %.3f\n", data.Len(), mean, sd, median)
	fmt.Fprintf(STDOUT, "Position/effect-size correlation: %.3f\n", stat.Correlation(positions, effects, nil))

	return nil
}

func printHistogram(effects []float64) error {
	if len(effects) < 1 {
		return nil
	}

	// The number of buckets is arbitrary
	hist := histogram.Hist(15, effects)

	return histogram.Fprint(STDOUT, hist, histogram.Linear(40))
}

func NullIntFormatter(n null.Int) string {
	if !n.Valid {
		return ""
	}

	return strconv.FormatInt(n.Int64, 10)
}

func NullFloatFormatter(n null.Float) string {
	if !n.Valid {
		return ""
	}

	return strconv.FormatFloat(n.Float64, 'g', -1, 64)
}
