package compose

import (
	"errors"
	"fmt"

	"estate-backoffice/internal/models"
)

var (
	ErrMissingProperty = errors.New("property with a persisted id is required")
	ErrMissingSettings = errors.New("agency settings are required")
)

// Options configures one composition run.
type Options struct {
	Size    PageSize    // zero value falls back to A4 portrait
	Measure MeasureFunc // nil falls back to approximate metrics
}

// CalculateTotalPages is the printed page budget used by headers/footers:
// base 3 (cover, details, contact) + ceil(areas/2) + ceil(floorplans/2).
// Known discrepancy carried over from the observed behavior: the formula
// neither subtracts a skipped location page nor follows the per-area
// gallery pagination, so the printed "of N" can differ from the emitted
// sequence.
func CalculateTotalPages(p *models.Property) int {
	return 3 + (len(p.Areas)+1)/2 + (len(p.Floorplans())+1)/2
}

// NewStyle resolves the agency palette, tolerating malformed hex values.
func NewStyle(settings *models.AgencySettings, measure MeasureFunc) Style {
	return Style{
		Primary:   ParseColor(settings.PrimaryColor, Color{26, 54, 93}),
		Secondary: ParseColor(settings.SecondaryColor, Color{201, 162, 39}),
		Measure:   measure,
	}
}

// ComposeDocument assembles the full brochure in the fixed order
// cover, details, floorplans, area galleries, location (when applicable),
// contact. Composition is strictly sequential within one document; separate
// documents may be composed concurrently since no state is shared.
func ComposeDocument(p *models.Property, settings *models.AgencySettings, opts Options) (*Document, error) {
	if p == nil || p.ID == 0 {
		return nil, ErrMissingProperty
	}
	if settings == nil {
		return nil, ErrMissingSettings
	}
	p = plainTextProperty(p)

	size := opts.Size
	if size.Width == 0 {
		size = A4Portrait
	}
	style := NewStyle(settings, opts.Measure)

	doc := &Document{Size: size}
	doc.Pages = append(doc.Pages, ComposeCover(p, settings, style, size))
	doc.Pages = append(doc.Pages, ComposeDetails(p, style, size))
	doc.Pages = append(doc.Pages, ComposeFloorplanPages(p.Floorplans(), style, size)...)

	for i := range p.Areas {
		doc.Pages = append(doc.Pages, ComposeAreaPages(&p.Areas[i], style, size)...)
	}

	if page, ok := ComposeLocation(p, style, size); ok {
		doc.Pages = append(doc.Pages, page)
	}

	doc.Pages = append(doc.Pages, ComposeContact(settings, style, size))

	stampPageNumbers(doc, CalculateTotalPages(p), style)
	return doc, nil
}

// ComposeLandscapeSheet produces the one-page landscape variant used by the
// quick-sheet entry point.
func ComposeLandscapeSheet(p *models.Property, settings *models.AgencySettings, opts Options) (*Document, error) {
	if p == nil || p.ID == 0 {
		return nil, ErrMissingProperty
	}
	if settings == nil {
		return nil, ErrMissingSettings
	}
	p = plainTextProperty(p)

	style := NewStyle(settings, opts.Measure)
	doc := &Document{Size: A4Landscape}
	doc.Pages = append(doc.Pages, ComposeCoverLandscape(p, settings, style))
	stampPageNumbers(doc, 1, style)
	return doc, nil
}

// stampPageNumbers threads the running page counter through the composed
// sequence and prints the "Page X of N" footer on every page after the
// cover. N comes from CalculateTotalPages, not from the emitted length.
func stampPageNumbers(doc *Document, total int, style Style) {
	for i := range doc.Pages {
		page := &doc.Pages[i]
		page.Number = i + 1
		page.Total = total
		if i == 0 {
			continue
		}
		page.add(TextBlock{
			Text:     fmt.Sprintf("Page %d of %d", page.Number, page.Total),
			X:        page.Size.Width - DefaultMargins.Right - 70,
			Y:        page.Size.Height - 20,
			FontSize: 8,
			Color:    ColorGray,
		})
	}
}
