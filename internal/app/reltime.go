package app

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var magnitudeRe = regexp.MustCompile(`(\d+)`)

const day = 24 * time.Hour

// ResolveRelativeTime converts an Indonesian relative timestamp
// ("3 hari yang lalu") into a YYYY-MM-DD date relative to now. The
// "diedit" editing marker is stripped first. Months count as 30 days and
// years as 365; this is a deliberate approximation, calendar lengths are
// not modeled. Returns "" when no unit keyword matches.
func ResolveRelativeTime(text string, now time.Time) string {
	text = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(text), "diedit", ""))
	if text == "" {
		return ""
	}

	var offset time.Duration
	n := time.Duration(magnitude(text))
	switch {
	case containsAny(text, "menit", "detik", "baru saja"):
		offset = 0
	case strings.Contains(text, "jam"):
		offset = n * time.Hour
	case strings.Contains(text, "hari"):
		offset = n * day
	case strings.Contains(text, "minggu"):
		offset = n * 7 * day
	case strings.Contains(text, "bulan"):
		offset = n * 30 * day
	case strings.Contains(text, "tahun"):
		offset = n * 365 * day
	default:
		return ""
	}

	return now.Add(-offset).Format("2006-01-02")
}

// magnitude pulls the leading integer out of the text, defaulting to 1
// ("setahun yang lalu" carries no digit).
func magnitude(text string) int {
	m := magnitudeRe.FindStringSubmatch(text)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return n
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
