package shared

import "testing"

func TestQuerySlug(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Tempat Wisata di Karawang", "tempat_wisata_di_karawang"},
		{"Kafe & Resto!", "kafe_resto"},
		{"  spasi -- ganda  ", "spasi_ganda"},
	}
	for _, c := range cases {
		if got := QuerySlug(c.in); got != c.want {
			t.Fatalf("QuerySlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLoadDerivesManifestFromQuery(t *testing.T) {
	t.Setenv("SEARCH_QUERY", "Pantai di Bali")
	t.Setenv("PLACES_FILE", "")

	cfg := Load()
	want := "data/raw/pantai_di_bali_places_list.csv"
	if cfg.PlacesFile != want {
		t.Fatalf("PlacesFile = %q, want %q", cfg.PlacesFile, want)
	}
}

func TestLoadExplicitManifestWins(t *testing.T) {
	t.Setenv("PLACES_FILE", "custom/places.csv")

	cfg := Load()
	if cfg.PlacesFile != "custom/places.csv" {
		t.Fatalf("PlacesFile = %q", cfg.PlacesFile)
	}
}
