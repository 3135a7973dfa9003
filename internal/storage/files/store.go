// Package files is the artifact layer: a place manifest CSV, one JSON
// document per scraped place and the final dataset CSV. Artifact
// existence doubles as the scraper's resume marker.
package files

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gmaps_reviews/internal/domain"
)

// utf8BOM makes spreadsheet tools decode the CSVs as UTF-8.
const utf8BOM = "\xEF\xBB\xBF"

var datasetHeader = []string{
	"user_id", "user_rating", "review_text", "review_time",
	"place_name", "place_description", "place_category", "place_attributes",
	"place_address", "place_total_reviews_gmaps", "place_avg_rating",
}

type Store struct {
	placesFile  string
	reviewsDir  string
	datasetFile string
}

func New(placesFile, reviewsDir, datasetFile string) *Store {
	return &Store{placesFile: placesFile, reviewsDir: reviewsDir, datasetFile: datasetFile}
}

var slugJunk = regexp.MustCompile(`[^\w\s-]`)

// Slug turns a place name into a safe artifact filename stem.
func Slug(name string) string {
	return strings.TrimSpace(slugJunk.ReplaceAllString(name, ""))
}

func (s *Store) placePath(name string) string {
	return filepath.Join(s.reviewsDir, Slug(name)+".json")
}

func (s *Store) HasPlace(name string) bool {
	_, err := os.Stat(s.placePath(name))
	return err == nil
}

func (s *Store) SavePlace(name string, doc domain.PlaceDocument) error {
	if err := os.MkdirAll(s.reviewsDir, 0o755); err != nil {
		return fmt.Errorf("create reviews dir: %w", err)
	}
	buf, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode artifact %q: %w", name, err)
	}
	if err := os.WriteFile(s.placePath(name), buf, 0o644); err != nil {
		return fmt.Errorf("write artifact %q: %w", name, err)
	}
	return nil
}

func (s *Store) ListPlaces() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.reviewsDir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *Store) LoadPlace(path string) (domain.PlaceDocument, error) {
	var doc domain.PlaceDocument
	buf, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(buf, &doc); err != nil {
		return doc, fmt.Errorf("decode artifact %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

func (s *Store) SaveDataset(rows []domain.DatasetRow) error {
	if err := os.MkdirAll(filepath.Dir(s.datasetFile), 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}
	f, err := os.Create(s.datasetFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(datasetHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.UserID,
			strconv.Itoa(r.UserRating),
			r.ReviewText,
			r.ReviewTime,
			r.PlaceName,
			r.PlaceDescription,
			r.PlaceCategory,
			r.PlaceAttributes,
			r.PlaceAddress,
			strconv.Itoa(r.PlaceTotalReviews),
			strconv.FormatFloat(r.PlaceAvgRating, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// SavePlaces writes the manifest consumed by the reviews stage.
func (s *Store) SavePlaces(places []domain.PlaceSource) error {
	if err := os.MkdirAll(filepath.Dir(s.placesFile), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	f, err := os.Create(s.placesFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"place_name", "gmaps_url"}); err != nil {
		return err
	}
	for _, p := range places {
		if err := w.Write([]string{p.Name, p.URL}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// LoadPlaces reads the manifest. Columns are located by header name so
// hand-edited files with extra columns still load.
func (s *Store) LoadPlaces() ([]domain.PlaceSource, error) {
	f, err := os.Open(s.placesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", s.placesFile, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("manifest %s has no places", s.placesFile)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	nameIdx, urlIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "place_name":
			nameIdx = i
		case "gmaps_url":
			urlIdx = i
		}
	}
	if nameIdx < 0 || urlIdx < 0 {
		return nil, fmt.Errorf("manifest %s is missing place_name/gmaps_url columns", s.placesFile)
	}

	var out []domain.PlaceSource
	for _, rec := range records[1:] {
		if len(rec) <= nameIdx || len(rec) <= urlIdx {
			continue
		}
		name := strings.TrimSpace(rec[nameIdx])
		url := strings.TrimSpace(rec[urlIdx])
		if name == "" || url == "" {
			continue
		}
		out = append(out, domain.PlaceSource{Name: name, URL: url})
	}
	return out, nil
}
