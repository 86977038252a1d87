package validparse

import "testing"

func TestUint(t *testing.T) {
	v, ok := Uint("751756")
	if !ok || v != 751756 {
		t.Errorf("Expected (751756, true), got (%d, %v)", v, ok)
	}

	for _, field := range []string{"", "abc", "-1", "1.5", "1e5", "12 345"} {
		if _, ok := Uint(field); ok {
			t.Errorf("Expected %q to be invalid", field)
		}
	}
}

func TestInt(t *testing.T) {
	v, ok := Int("-42")
	if !ok || v != -42 {
		t.Errorf("Expected (-42, true), got (%d, %v)", v, ok)
	}

	if _, ok := Int("NR"); ok {
		t.Error("Expected NR to be invalid")
	}
}

func TestFloat(t *testing.T) {
	v, ok := Float("1.4113e-06")
	if !ok || v != 1.4113e-06 {
		t.Errorf("Expected (1.4113e-06, true), got (%g, %v)", v, ok)
	}

	for _, field := range []string{"", "n/a", "NR", "0.5 (unit increase)"} {
		if _, ok := Float(field); ok {
			t.Errorf("Expected %q to be invalid", field)
		}
	}
}

func TestNullWrappers(t *testing.T) {
	if n := NullUint("100"); !n.Valid || n.Int64 != 100 {
		t.Errorf("Expected valid 100, got %+v", n)
	}
	if n := NullUint("abc"); n.Valid {
		t.Errorf("Expected invalid, got %+v", n)
	}

	if n := NullFloat("1.2"); !n.Valid || n.Float64 != 1.2 {
		t.Errorf("Expected valid 1.2, got %+v", n)
	}
	if n := NullFloat("n/a"); n.Valid {
		t.Errorf("Expected invalid, got %+v", n)
	}
}
