package app_test

import (
	"testing"
	"time"

	"gmaps_reviews/internal/app"
)

func TestResolveRelativeTime(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want string
	}{
		{"2 jam yang lalu", "2024-01-10"}, // hour offsets truncate to the same date
		{"3 hari yang lalu", "2024-01-07"},
		{"1 minggu yang lalu", "2024-01-03"},
		{"seminggu yang lalu", "2024-01-03"}, // no digit, magnitude defaults to 1
		{"2 bulan yang lalu", "2023-11-11"},  // 30-day months
		{"1 tahun yang lalu", "2023-01-10"},  // 365-day years
		{"5 menit yang lalu", "2024-01-10"},
		{"baru saja", "2024-01-10"},
		{"Diedit 3 hari yang lalu", "2024-01-07"},
		{"gibberish", ""},
		{"", ""},
		{"diedit", ""},
	}
	for _, c := range cases {
		if got := app.ResolveRelativeTime(c.in, now); got != c.want {
			t.Errorf("ResolveRelativeTime(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
