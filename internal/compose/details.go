package compose

import (
	"fmt"

	"estate-backoffice/internal/models"
)

const (
	specGridGutter   = 10.0
	featureLineH     = 16.0
	maxFeaturesShown = 12
)

// SpecValue renders one stat card value, substituting "N/A" for empty
// fields. The unit suffix is applied either way, so an unknown plot size
// still reads "N/A m²".
func SpecValue(value, suffix string) string {
	if value == "" {
		value = "N/A"
	}
	return value + suffix
}

func specInt(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

// SpecCards returns the six labeled stat cards of the details page in grid
// order.
func SpecCards(p *models.Property) [6][2]string {
	return [6][2]string{
		{"Build year", SpecValue(specInt(p.BuildYear), "")},
		{"Plot size", SpecValue(specInt(p.PlotSize), " m²")},
		{"Living area", SpecValue(specInt(p.LivingArea), " m²")},
		{"Bedrooms", SpecValue(specInt(p.Bedrooms), "")},
		{"Bathrooms", SpecValue(specInt(p.Bathrooms), "")},
		{"Energy label", SpecValue(p.EnergyLabel, "")},
	}
}

// ComposeDetails builds the details page: the fixed spec-card grid on top
// and the description/features split panel below. The grid is 2x3 in
// portrait and 3x2 in landscape.
func ComposeDetails(p *models.Property, style Style, size PageSize) Page {
	page := Page{Size: size}
	m := DefaultMargins

	page.add(TextBlock{Text: p.Title, X: m.Left, Y: m.Top + 16, FontSize: 18, Color: style.Primary, Bold: true})

	cols, rows := 2, 3
	if size.Landscape() {
		cols, rows = 3, 2
	}

	gridTop := m.Top + 40.0
	gridH := size.ContentHeight(m) * 0.38
	cellW, cellH := CellSize(size.ContentWidth(m), gridH, cols, rows, specGridGutter)

	cards := SpecCards(p)
	for i, card := range cards {
		row, col := i/cols, i%cols
		x, y := CellOrigin(m.Left, gridTop, row, col, cellW, cellH, specGridGutter)
		page.add(
			Panel{X: x, Y: y, W: cellW, H: cellH, Fill: Color{245, 245, 245}},
			TextBlock{Text: card[0], X: x + 10, Y: y + 18, FontSize: 9, Color: ColorGray},
			TextBlock{Text: card[1], X: x + 10, Y: y + cellH - 14, FontSize: 14, Color: style.Primary, Bold: true},
		)
	}

	splitTop := gridTop + gridH + 24
	boxH := size.Height - m.Bottom - splitTop
	boxW := (size.ContentWidth(m) - specGridGutter) / 2

	composeDescriptionBox(&page, p.Description, style, m.Left, splitTop, boxW, boxH)
	composeFeaturesBox(&page, p.Features, style, m.Left+boxW+specGridGutter, splitTop, boxW, boxH)

	return page
}

func composeDescriptionBox(page *Page, description string, style Style, x, y, w, h float64) {
	page.add(TextBlock{Text: "Description", X: x, Y: y + 14, FontSize: 12, Color: style.Primary, Bold: true})

	lines := WrapText(description, w-8, 10, style.measure())
	maxLines := int((h - 28) / featureLineH)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for i, line := range lines {
		page.add(TextBlock{Text: line, X: x, Y: y + 34 + float64(i)*featureLineH, FontSize: 10, Color: ColorBlack})
	}
}

// composeFeaturesBox lists up to 12 features as bulleted lines, spilling into
// a second column inside the box when the vertical budget runs out.
func composeFeaturesBox(page *Page, features []models.PropertyFeature, style Style, x, y, w, h float64) {
	page.add(TextBlock{Text: "Features", X: x, Y: y + 14, FontSize: 12, Color: style.Primary, Bold: true})

	rowsPerColumn := int((h - 28) / featureLineH)
	if rowsPerColumn < 1 {
		rowsPerColumn = 1
	}

	shown := features
	if len(shown) > maxFeaturesShown {
		shown = shown[:maxFeaturesShown]
	}
	for i, f := range shown {
		col := i / rowsPerColumn
		row := i % rowsPerColumn
		if float64(col)*(w/2) >= w {
			break
		}
		page.add(TextBlock{
			Text:     "• " + f.Name,
			X:        x + float64(col)*(w/2),
			Y:        y + 34 + float64(row)*featureLineH,
			FontSize: 10,
			Color:    ColorBlack,
		})
	}
}
