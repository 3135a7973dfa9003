package app_test

import (
	"testing"

	"gmaps_reviews/internal/app"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Pantai   indah\nsekali  ", "Pantai indah sekali"},
		{"Bagus¬†sekali", "Bagussekali"},
		{"TempatÓóä nyaman", "Tempat nyaman"},
		{"\t\n  ", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := app.CleanText(c.in); got != c.want {
			t.Errorf("CleanText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanAttributes(t *testing.T) {
	in := []string{"  Fasilitas: Toilet", "★ Anak-anak: Cocok untuk anak", "", "  •  "}
	want := "Fasilitas: Toilet, Anak-anak: Cocok untuk anak"
	if got := app.CleanAttributes(in); got != want {
		t.Errorf("CleanAttributes = %q, want %q", got, want)
	}
	if got := app.CleanAttributes(nil); got != "" {
		t.Errorf("CleanAttributes(nil) = %q, want empty", got)
	}
}

func TestParseIntFromText(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1.234 ulasan", 1234},
		{"(56)", 56},
		{"no digits here", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := app.ParseIntFromText(c.in); got != c.want {
			t.Errorf("ParseIntFromText(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"4,5", 4.5},
		{"4.5", 4.5},
		{" 3 ", 3},
		{"abc", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := app.ParseDecimal(c.in); got != c.want {
			t.Errorf("ParseDecimal(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAnonymizeUser(t *testing.T) {
	a := app.AnonymizeUser("Budi Santoso")
	b := app.AnonymizeUser("Budi Santoso")
	if a != b {
		t.Fatalf("not deterministic: %q vs %q", a, b)
	}
	if len(a) != 10 {
		t.Fatalf("id length = %d, want 10", len(a))
	}
	if app.AnonymizeUser("") != "anonymous" {
		t.Fatalf("empty name should map to anonymous")
	}
	if app.AnonymizeUser("Budi") != app.AnonymizeUser(" BUDI ") {
		t.Fatalf("anonymization should ignore case and surrounding whitespace")
	}
	if app.AnonymizeUser("Budi") == app.AnonymizeUser("Budi Santoso") {
		t.Fatalf("different names should map to different ids")
	}
}
