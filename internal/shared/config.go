package shared

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	MetricsAddr string

	// browser
	Headless   bool
	Locale     string
	NavPerSec  float64 // politeness cap on navigations
	LoadTO     time.Duration
	SelectorTO time.Duration
	FallbackTO time.Duration

	// places stage
	SearchQuery string
	PlacesFile  string
	MaxPlaces   int
	FeedGiveUp  int // the feed tolerates more stalls than the reviews panel

	// reviews stage
	ReviewsDir    string
	MaxReviews    int // target reviews per place (with text)
	ScrollBuffer  int // extra cards loaded to survive empty-review filtering
	ScrollSettle  time.Duration
	TabSwitch     time.Duration
	EscalateAfter int
	GiveUpAfter   int

	// dataset stage
	DatasetFile string
	SampleSize  int // max reviews kept per place after sampling
	Workers     int
}

func Load() Config {
	// best-effort; env vars win over .env
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	ms := func(k string, def int) time.Duration {
		return time.Duration(atoi(k, def)) * time.Millisecond
	}
	query := env("SEARCH_QUERY", "Tempat Wisata di Karawang")

	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		MetricsAddr: env("METRICS_ADDR", ""),

		Headless:   env("HEADLESS", "true") != "false",
		Locale:     env("BROWSER_LOCALE", "id-ID"),
		NavPerSec:  float64(atoi("NAV_PER_MIN", 12)) / 60.0,
		LoadTO:     ms("PAGE_LOAD_TIMEOUT_MS", 60000),
		SelectorTO: ms("SELECTOR_TIMEOUT_MS", 15000),
		FallbackTO: ms("FALLBACK_TIMEOUT_MS", 5000),

		SearchQuery: query,
		PlacesFile:  env("PLACES_FILE", filepath.Join("data", "raw", QuerySlug(query)+"_places_list.csv")),
		MaxPlaces:   atoi("MAX_PLACES", 300),
		FeedGiveUp:  atoi("FEED_STALL_GIVE_UP_AFTER", 20),

		ReviewsDir:    env("REVIEWS_DIR", "data/reviews_json"),
		MaxReviews:    atoi("MAX_REVIEWS_PER_PLACE", 400),
		ScrollBuffer:  atoi("SCROLL_EXTRA_BUFFER", 100),
		ScrollSettle:  ms("SCROLL_SETTLE_MS", 1500),
		TabSwitch:     ms("TAB_SWITCH_DELAY_MS", 2000),
		EscalateAfter: atoi("STALL_ESCALATE_AFTER", 3),
		GiveUpAfter:   atoi("STALL_GIVE_UP_AFTER", 10),

		DatasetFile: env("DATASET_FILE", "data/processed/reviews_final.csv"),
		SampleSize:  atoi("SAMPLE_MAX_REVIEWS", 150),
		Workers:     atoi("PROCESS_WORKERS", 4),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

var (
	slugStripRe = regexp.MustCompile(`[^\w\s-]`)
	slugSepRe   = regexp.MustCompile(`[-\s]+`)
)

// QuerySlug turns a search query into a filename stem, so each query
// gets its own manifest by default.
func QuerySlug(query string) string {
	s := strings.ToLower(strings.TrimSpace(query))
	s = slugStripRe.ReplaceAllString(s, "")
	return slugSepRe.ReplaceAllString(s, "_")
}
