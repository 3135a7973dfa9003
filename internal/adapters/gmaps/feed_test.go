package gmaps

import "testing"

const feedHTML = `
<div role="feed">
  <a class="hfpxzc" aria-label="Pantai Samudra Baru" href="https://www.google.com/maps/place/pantai-samudra"></a>
  <a class="hfpxzc" href="https://www.google.com/maps/place/no-label"></a>
  <a class="hfpxzc" aria-label="Curug Cigentis" href="https://www.google.com/maps/place/curug-cigentis"></a>
  <a class="hfpxzc" aria-label="Tanpa Tautan"></a>
</div>`

func TestParsePlaces(t *testing.T) {
	got, err := ParsePlaces(feedHTML, 10)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("places = %d, want 2 (incomplete links dropped)", len(got))
	}
	if got[0].Name != "Pantai Samudra Baru" || got[0].URL != "https://www.google.com/maps/place/pantai-samudra" {
		t.Fatalf("first place = %+v", got[0])
	}
	if got[1].Name != "Curug Cigentis" {
		t.Fatalf("second place = %+v", got[1])
	}
}

func TestParsePlacesCap(t *testing.T) {
	got, err := ParsePlaces(feedHTML, 1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("places = %d, want the cap 1", len(got))
	}
}
