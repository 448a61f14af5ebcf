package country

import "testing"

func TestResolverISO3(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"United States", "USA", true},
		{"Brazil", "BRA", true},
		{"Russian Federation", "RUS", true},
		{"Bolivia (Plurinational State of)", "BOL", true},
		{"Egypt, Arab Rep.", "EGY", true},
		{"Viet Nam", "VNM", true},
		{"Atlantis", "", false},
	}

	for _, tt := range tests {
		got, ok := r.ISO3(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ISO3(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolverM49(t *testing.T) {
	r := NewResolver()

	got, ok := r.M49("United States")
	if !ok || got != "840" {
		t.Errorf("M49(United States) = %q, %v; want 840, true", got, ok)
	}

	// Alias resolves through to the canonical entry's code
	got, ok = r.M49("Russian Federation")
	if !ok || got != "643" {
		t.Errorf("M49(Russian Federation) = %q, %v; want 643, true", got, ok)
	}
}

func TestResolverNameFallsBackToCode(t *testing.T) {
	r := NewResolver()

	if name := r.Name("BRA"); name != "Brazil" {
		t.Errorf("Name(BRA) = %q; want Brazil", name)
	}
	if name := r.Name("bra"); name != "Brazil" {
		t.Errorf("Name(bra) = %q; want Brazil", name)
	}
	// Unresolvable codes echo back, never error
	if name := r.Name("ZZZ"); name != "ZZZ" {
		t.Errorf("Name(ZZZ) = %q; want ZZZ", name)
	}
}

func TestResolverTables(t *testing.T) {
	r := NewResolver()

	if len(r.Names()) < 150 {
		t.Errorf("expected a broad base table, got %d names", len(r.Names()))
	}
	if len(r.Names()) != len(r.ISO3Codes()) {
		t.Error("names and codes must be the same length")
	}
}
