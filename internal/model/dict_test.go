package model

import "testing"

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("site", Marker())
	d.Set("area", Float(1200, "ft²"))
	d.Set("dis", Str("Building A"))

	want := []string{"site", "area", "dis"}
	got := d.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("Keys()[%d] = %q, want %q", i, got[i], k)
		}
	}
}

func TestDictOverwritePreservesPosition(t *testing.T) {
	d := NewDict()
	d.Set("a", Int(1, ""))
	d.Set("b", Int(2, ""))
	d.Set("a", Int(3, ""))

	if got := d.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Keys() = %v, want [a b] (overwrite must not move position)", got)
	}
	v, _ := d.Get("a")
	if v.Int64() != 3 {
		t.Fatalf("Get(a) = %v, want updated value 3", v.Int64())
	}
}

func TestDictStringRendersTagsZincStyle(t *testing.T) {
	d := NewDict()
	d.Set("site", Marker())
	d.Set("dis", Str("Bldg"))
	want := `site dis:"Bldg"`
	if got := d.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestDictCloneIsIndependent(t *testing.T) {
	d := NewDict()
	d.Set("a", Int(1, ""))
	clone := d.Clone()
	clone.Set("b", Int(2, ""))

	if d.Has("b") {
		t.Fatalf("mutating clone must not affect original")
	}
	if !clone.Has("a") || !clone.Has("b") {
		t.Fatalf("clone should retain original keys plus new ones")
	}
}

func TestDictLenNilSafe(t *testing.T) {
	var d *Dict
	if d.Len() != 0 {
		t.Fatalf("nil Dict Len() should be 0")
	}
	if d.String() != "" {
		t.Fatalf("nil Dict String() should be empty")
	}
}
