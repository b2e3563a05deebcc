package compose

import (
	"strings"
	"testing"

	"estate-backoffice/internal/models"
)

func testSettings() *models.AgencySettings {
	return &models.AgencySettings{
		Name:           "Harbor & Stone Estates",
		Address:        "Keizersgracht 12, Amsterdam",
		Phone:          "+31 20 555 0100",
		Email:          "info@harborstone.example",
		PrimaryColor:   "#1a365d",
		SecondaryColor: "#c9a227",
	}
}

func imageURLs(page Page) []string {
	var urls []string
	for _, item := range page.Items {
		if img, ok := item.(ImageBox); ok {
			urls = append(urls, img.URL)
		}
	}
	return urls
}

func TestCellSizeAndOrigin(t *testing.T) {
	cellW, cellH := CellSize(300, 200, 3, 2, 10)
	if cellW != 90 {
		t.Fatalf("expected cell width 90, got %v", cellW)
	}
	if cellH != 90 {
		t.Fatalf("expected cell height 90, got %v", cellH)
	}

	x, y := CellOrigin(50, 20, 1, 2, cellW, cellH, 10)
	if x != 50+2*(90+10) {
		t.Fatalf("expected x 250, got %v", x)
	}
	if y != 20+1*(90+10) {
		t.Fatalf("expected y 120, got %v", y)
	}
}

func TestAreaPageCount(t *testing.T) {
	tests := []struct {
		images  int
		columns int
		want    int
	}{
		{0, 2, 1},
		{1, 2, 1},
		{6, 2, 1},
		{7, 2, 2},
		{12, 2, 2},
		{13, 2, 3},
		{9, 3, 1},
		{10, 3, 2},
		{3, 1, 1},
		{4, 1, 2},
		{5, 0, 1}, // unset columns falls back to 2
	}
	for _, tt := range tests {
		if got := AreaPageCount(tt.images, tt.columns); got != tt.want {
			t.Fatalf("AreaPageCount(%d, %d) = %d, want %d", tt.images, tt.columns, got, tt.want)
		}
	}
}

func TestComposeAreaPages_HeaderOnlyOnFirstPage(t *testing.T) {
	area := models.PropertyArea{Title: "Living Room", Description: "Bright south-facing room", Columns: 2}
	for i := 0; i < 8; i++ {
		area.Images = append(area.Images, models.PropertyImage{URL: "img"})
	}

	pages := ComposeAreaPages(&area, Style{}, A4Portrait)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages for 8 images at 2 columns, got %d", len(pages))
	}

	firstHasTitle := false
	for _, item := range pages[0].Items {
		if tb, ok := item.(TextBlock); ok && tb.Text == "Living Room" {
			firstHasTitle = true
		}
	}
	if !firstHasTitle {
		t.Fatalf("first area page must carry the title header")
	}
	for _, item := range pages[1].Items {
		if tb, ok := item.(TextBlock); ok && tb.Text == "Living Room" {
			t.Fatalf("follow-up area pages must omit the header")
		}
	}
	if len(imageURLs(pages[0])) != 6 || len(imageURLs(pages[1])) != 2 {
		t.Fatalf("expected 6+2 image split, got %d+%d", len(imageURLs(pages[0])), len(imageURLs(pages[1])))
	}
}

func TestSpecValue_Fallbacks(t *testing.T) {
	if got := SpecValue("", " m²"); got != "N/A m²" {
		t.Fatalf("expected 'N/A m²', got %q", got)
	}
	if got := SpecValue("120", " m²"); got != "120 m²" {
		t.Fatalf("expected '120 m²', got %q", got)
	}
	if got := SpecValue("", ""); got != "N/A" {
		t.Fatalf("expected 'N/A', got %q", got)
	}
}

func TestSpecCards_EmptyFieldsRenderNA(t *testing.T) {
	p := &models.Property{LivingArea: 180, Bedrooms: 4}
	cards := SpecCards(p)

	want := map[string]string{
		"Build year":   "N/A",
		"Plot size":    "N/A m²",
		"Living area":  "180 m²",
		"Bedrooms":     "4",
		"Bathrooms":    "N/A",
		"Energy label": "N/A",
	}
	for _, card := range cards {
		if want[card[0]] != card[1] {
			t.Fatalf("card %q: expected %q, got %q", card[0], want[card[0]], card[1])
		}
	}
}

func TestGroupNearbyPlaces_PreservesFirstOccurrenceOrder(t *testing.T) {
	places := []models.NearbyPlace{
		{Name: "Central Station", Type: "transport"},
		{Name: "Oak Primary", Type: "school"},
		{Name: "Tram 5", Type: "transport"},
		{Name: "City Park", Type: "park"},
	}

	groups := GroupNearbyPlaces(places)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	order := []string{"transport", "school", "park"}
	for i, g := range groups {
		if g.Type != order[i] {
			t.Fatalf("expected group %d to be %q, got %q", i, order[i], g.Type)
		}
	}
	if len(groups[0].Places) != 2 {
		t.Fatalf("expected 2 transport places, got %d", len(groups[0].Places))
	}
}

func TestComposeLocation_SkippedWithoutContent(t *testing.T) {
	p := &models.Property{ID: 1}
	if _, ok := ComposeLocation(p, Style{}, A4Portrait); ok {
		t.Fatalf("location page must be skipped when no location content exists")
	}

	p.LocationDescription = "Close to the canals."
	if _, ok := ComposeLocation(p, Style{}, A4Portrait); !ok {
		t.Fatalf("location page must be emitted when a description exists")
	}
}

func TestComposeDocument_ThreePageMinimum(t *testing.T) {
	p := &models.Property{
		ID:    1,
		Title: "Canal House",
		Images: []models.PropertyImage{
			{ID: 1, URL: "u1", IsMain: true},
			{ID: 2, URL: "u2", IsFeatured: true},
			{ID: 3, URL: "u3", IsFeatured: true},
		},
	}

	doc, err := ComposeDocument(p, testSettings(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages (cover, details, contact), got %d", len(doc.Pages))
	}
	if got := CalculateTotalPages(p); got != 3 {
		t.Fatalf("expected total page count 3, got %d", got)
	}

	cover := doc.Pages[0]
	urls := imageURLs(cover)
	if len(urls) != 3 {
		t.Fatalf("expected main + 2 featured images on cover, got %v", urls)
	}
	if urls[0] != "u1" {
		t.Fatalf("expected main image u1, got %q", urls[0])
	}
	// Portrait cover does not backfill: only the flagged pair appears.
	if urls[1] != "u2" || urls[2] != "u3" {
		t.Fatalf("expected featured grid [u2 u3], got %v", urls[1:])
	}
}

func TestComposeDocument_ValidationAborts(t *testing.T) {
	if _, err := ComposeDocument(nil, testSettings(), Options{}); err != ErrMissingProperty {
		t.Fatalf("expected ErrMissingProperty, got %v", err)
	}
	if _, err := ComposeDocument(&models.Property{}, testSettings(), Options{}); err != ErrMissingProperty {
		t.Fatalf("expected ErrMissingProperty for unsaved property, got %v", err)
	}
	if _, err := ComposeDocument(&models.Property{ID: 1}, nil, Options{}); err != ErrMissingSettings {
		t.Fatalf("expected ErrMissingSettings, got %v", err)
	}
}

func TestComposeDocument_PageNumbersSequential(t *testing.T) {
	p := &models.Property{ID: 1, Title: "Villa"}
	p.Areas = []models.PropertyArea{
		{Title: "Garden", Columns: 2, Images: make([]models.PropertyImage, 7)},
	}
	p.NearbyPlaces = []models.NearbyPlace{{Name: "Station", Type: "transport"}}

	doc, err := ComposeDocument(p, testSettings(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// cover + details + 2 area pages + location + contact
	if len(doc.Pages) != 6 {
		t.Fatalf("expected 6 pages, got %d", len(doc.Pages))
	}
	for i, page := range doc.Pages {
		if page.Number != i+1 {
			t.Fatalf("page %d numbered %d", i, page.Number)
		}
	}

	// The printed total uses the fixed formula (3 + ceil(1/2) = 4) even
	// though 6 pages were emitted; the mismatch is a documented carry-over
	// from the observed behavior, not an arithmetic bug to fix here.
	if doc.Pages[1].Total != 4 {
		t.Fatalf("expected printed total 4, got %d", doc.Pages[1].Total)
	}
}

func TestComposeLandscapeSheet_BackfillsFeaturedGrid(t *testing.T) {
	p := &models.Property{
		ID:    1,
		Title: "Penthouse",
		Images: []models.PropertyImage{
			{ID: 1, URL: "main", IsMain: true},
			{ID: 2, URL: "f1", IsFeatured: true},
			{ID: 3, URL: "g1"},
			{ID: 4, URL: "g2"},
			{ID: 5, URL: "g3"},
		},
	}

	doc, err := ComposeLandscapeSheet(p, testSettings(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected a single page, got %d", len(doc.Pages))
	}

	urls := imageURLs(doc.Pages[0])
	// main + 4 grid slots: the flagged image first, then pool backfill.
	if len(urls) != 5 {
		t.Fatalf("expected 5 images, got %v", urls)
	}
	if urls[1] != "f1" {
		t.Fatalf("expected flagged featured image first in grid, got %v", urls[1:])
	}
	// The main image never doubles as backfill.
	for _, u := range urls[1:] {
		if u == "main" {
			t.Fatalf("main image must not be reused in the featured grid: %v", urls)
		}
	}
}

func TestWrapText_RespectsWidth(t *testing.T) {
	measure := func(s string, size float64) float64 { return float64(len(s)) * size * 0.5 }

	lines := WrapText("one two three four five six", 50, 10, measure)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %v", lines)
	}
	for _, line := range lines {
		if measure(line, 10) > 50 && len([]rune(line)) > 10 {
			t.Fatalf("line %q exceeds wrap width", line)
		}
	}

	if lines := WrapText("", 100, 10, measure); len(lines) != 0 {
		t.Fatalf("expected no lines for empty text, got %v", lines)
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Bright <strong>corner</strong> apartment</p>", "Bright corner apartment"},
		{"Tom &amp; Jerry &lt;3", "Tom & Jerry <3"},
		{"  plain text  ", "plain text"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripMarkup(tt.in); got != tt.want {
			t.Fatalf("stripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComposeDocument_FlattensRichText(t *testing.T) {
	p := &models.Property{
		ID:                  1,
		Title:               "Canal House",
		Description:         "<p>Bright <strong>corner</strong> apartment</p>",
		LocationDescription: "<em>Close</em> to the canals",
	}
	p.Areas = []models.PropertyArea{
		{Title: "Kitchen", Description: "<ul><li>Granite counters</li></ul>"},
	}

	doc, err := ComposeDocument(p, testSettings(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	texts := map[string]bool{}
	for _, page := range doc.Pages {
		for _, item := range page.Items {
			if tb, ok := item.(TextBlock); ok {
				if strings.ContainsAny(tb.Text, "<>") {
					t.Fatalf("markup reached a text primitive: %q", tb.Text)
				}
				texts[tb.Text] = true
			}
		}
	}
	if !texts["Bright corner apartment"] {
		t.Fatalf("expected flattened description in the document")
	}

	// The stored record keeps its markup for the web editor.
	if p.Description != "<p>Bright <strong>corner</strong> apartment</p>" {
		t.Fatalf("composition must not mutate the source property: %q", p.Description)
	}
	if p.Areas[0].Description != "<ul><li>Granite counters</li></ul>" {
		t.Fatalf("composition must not mutate area descriptions: %q", p.Areas[0].Description)
	}
}

func TestParseColor(t *testing.T) {
	if c := ParseColor("#ff8000", ColorBlack); c != (Color{255, 128, 0}) {
		t.Fatalf("unexpected color: %+v", c)
	}
	if c := ParseColor("#f80", ColorBlack); c != (Color{255, 136, 0}) {
		t.Fatalf("unexpected short-form color: %+v", c)
	}
	if c := ParseColor("not-a-color", Color{1, 2, 3}); c != (Color{1, 2, 3}) {
		t.Fatalf("expected fallback color, got %+v", c)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(249500000); got != "€ 2.495.000" {
		t.Fatalf("unexpected price: %q", got)
	}
	if got := FormatPrice(0); got != "Price on request" {
		t.Fatalf("unexpected zero price: %q", got)
	}
}
