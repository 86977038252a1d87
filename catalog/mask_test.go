package catalog

import (
	"errors"
	"testing"

	"github.com/genrisk/gwascat/validparse"
)

func TestPairedValues(t *testing.T) {
	c := testCatalog()

	pairs, err := PairedValues(c, 1, validparse.Uint, 2, validparse.Float)
	if err != nil {
		t.Fatal(err)
	}

	// Row 1 has a non-numeric position, row 2 a non-numeric effect size;
	// only row 0 survives.
	if len(pairs) != 1 {
		t.Fatalf("Expected exactly 1 pair, got %d", len(pairs))
	}
	if pairs[0].Row != 0 || pairs[0].A != 100 || pairs[0].B != 1.2 {
		t.Errorf("Expected (row 0, 100, 1.2), got %+v", pairs[0])
	}
}

func TestPairedValuesBothOrNeither(t *testing.T) {
	c := New(
		[]string{"ID", "CHR_POS", "OR or BETA"},
		[][]string{
			{"a", "1", "0.5"},
			{"b", "garbage", "0.5"},
			{"c", "2", "garbage"},
			{"d", "", ""},
			{"e", "3", "1.5"},
		},
	)

	pairs, err := PairedValues(c, 1, validparse.Uint, 2, validparse.Float)
	if err != nil {
		t.Fatal(err)
	}

	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	for _, pair := range pairs {
		if pair.Row != 0 && pair.Row != 4 {
			t.Errorf("Row %d has a non-numeric field but was emitted", pair.Row)
		}
	}
}

func TestPairedValuesRowOrder(t *testing.T) {
	c := New(
		[]string{"CHR_POS", "OR or BETA"},
		[][]string{
			{"500", "1.0"},
			{"100", "2.0"},
			{"300", "3.0"},
		},
	)

	pairs, err := PairedValues(c, 0, validparse.Uint, 1, validparse.Float)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(pairs); i++ {
		if pairs[i].Row <= pairs[i-1].Row {
			t.Errorf("Pairs not in ascending row order: %+v", pairs)
		}
	}
}

func TestPairedValuesColumnBounds(t *testing.T) {
	c := testCatalog()

	if _, err := PairedValues(c, 5, validparse.Uint, 2, validparse.Float); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := PairedValues(c, 1, validparse.Uint, -1, validparse.Float); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestIntersectCommutative(t *testing.T) {
	a := RowMask{0: {}, 1: {}, 2: {}, 5: {}}
	b := RowMask{1: {}, 2: {}, 7: {}}

	ab := Intersect(a, b)
	ba := Intersect(b, a)

	if len(ab) != len(ba) {
		t.Fatalf("Intersection sizes differ: %d vs %d", len(ab), len(ba))
	}
	for i := range ab {
		if _, exists := ba[i]; !exists {
			t.Errorf("Row %d in a∩b but not b∩a", i)
		}
	}
	if len(ab) != 2 {
		t.Errorf("Expected {1, 2}, got %v", ab)
	}
}

func TestIntersectEmpty(t *testing.T) {
	a := RowMask{0: {}, 1: {}}

	if got := Intersect(a, RowMask{}); len(got) != 0 {
		t.Errorf("Expected empty intersection, got %v", got)
	}
	if got := Intersect(RowMask{}, a); len(got) != 0 {
		t.Errorf("Expected empty intersection, got %v", got)
	}
}

func TestPairCountMatchesIntersection(t *testing.T) {
	c := testCatalog()

	maskPos := c.Mask(1, func(field string) bool {
		_, ok := validparse.Uint(field)
		return ok
	})
	maskES := c.Mask(2, func(field string) bool {
		_, ok := validparse.Float(field)
		return ok
	})

	pairs, err := PairedValues(c, 1, validparse.Uint, 2, validparse.Float)
	if err != nil {
		t.Fatal(err)
	}

	if want := len(Intersect(maskPos, maskES)); len(pairs) != want {
		t.Errorf("Pair count %d does not match intersection size %d", len(pairs), want)
	}
	if want := len(Intersect(maskES, maskPos)); len(pairs) != want {
		t.Errorf("Pair count %d does not match swapped intersection size %d", len(pairs), want)
	}
}

func TestMaskSkipsShortRows(t *testing.T) {
	c := New(
		[]string{"A", "B"},
		[][]string{
			{"1", "2"},
			{"1"},
		},
	)

	mask := c.Mask(1, func(field string) bool { return true })
	if len(mask) != 1 {
		t.Errorf("Expected the short row to be excluded, got %v", mask)
	}
	if _, exists := mask[0]; !exists {
		t.Errorf("Expected row 0 in mask, got %v", mask)
	}
}
