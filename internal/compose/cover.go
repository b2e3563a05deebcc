package compose

import (
	"fmt"

	"estate-backoffice/internal/models"
)

const coverGridGutter = 8.0

// ComposeCover builds the A4 portrait cover: a full-bleed main image over the
// top half, a title/price panel bottom-left and a 2x2 featured grid
// bottom-right. Only images explicitly flagged as featured make the grid in
// this variant; missing slots stay empty rather than being backfilled.
func ComposeCover(p *models.Property, settings *models.AgencySettings, style Style, size PageSize) Page {
	page := Page{Size: size}

	half := size.Height * 0.5
	if main := p.MainImage(); main != nil {
		page.add(ImageBox{URL: main.URL, X: 0, Y: 0, W: size.Width, H: half})
	}

	panelW := size.Width * 0.5
	page.add(Panel{X: 0, Y: half, W: panelW, H: half, Fill: style.Primary})

	textX := 28.0
	page.add(TextBlock{Text: p.Title, X: textX, Y: half + 48, FontSize: 24, Color: ColorWhite, Bold: true})
	if p.Address != "" || p.City != "" {
		page.add(TextBlock{Text: joinNonEmpty(p.Address, p.City), X: textX, Y: half + 76, FontSize: 12, Color: ColorWhite})
	}
	page.add(TextBlock{Text: FormatPrice(p.PriceCents), X: textX, Y: half + 120, FontSize: 18, Color: style.Secondary, Bold: true})
	if settings.Name != "" {
		page.add(TextBlock{Text: settings.Name, X: textX, Y: size.Height - 36, FontSize: 10, Color: ColorWhite})
	}

	featured := p.FeaturedImages()
	if len(featured) > 4 {
		featured = featured[:4]
	}
	placeCoverGrid(&page, featured, panelW, half, size.Width-panelW, half)

	return page
}

// ComposeCoverLandscape builds the single-page landscape variant: main image
// across the left half, title panel and featured grid on the right. Unlike
// the portrait cover, this variant backfills the grid from the general image
// pool when fewer than four images carry the featured flag.
func ComposeCoverLandscape(p *models.Property, settings *models.AgencySettings, style Style) Page {
	size := A4Landscape
	page := Page{Size: size}

	halfW := size.Width * 0.5
	if main := p.MainImage(); main != nil {
		page.add(ImageBox{URL: main.URL, X: 0, Y: 0, W: halfW, H: size.Height})
	}

	panelH := size.Height * 0.35
	page.add(Panel{X: halfW, Y: 0, W: halfW, H: panelH, Fill: style.Primary})

	textX := halfW + 24
	page.add(TextBlock{Text: p.Title, X: textX, Y: 44, FontSize: 22, Color: ColorWhite, Bold: true})
	if p.Address != "" || p.City != "" {
		page.add(TextBlock{Text: joinNonEmpty(p.Address, p.City), X: textX, Y: 70, FontSize: 11, Color: ColorWhite})
	}
	page.add(TextBlock{Text: FormatPrice(p.PriceCents), X: textX, Y: panelH - 28, FontSize: 16, Color: style.Secondary, Bold: true})
	if settings.Name != "" {
		page.add(TextBlock{Text: settings.Name, X: textX, Y: size.Height - 24, FontSize: 10, Color: style.Primary})
	}

	placeCoverGrid(&page, backfillFeatured(p, 4), halfW, panelH, halfW, size.Height-panelH)

	return page
}

// backfillFeatured returns up to max cover-grid images: flagged featured
// images first, then the rest of the pool in list order. The resolved main
// image is never reused as backfill.
func backfillFeatured(p *models.Property, max int) []models.PropertyImage {
	out := p.FeaturedImages()
	if len(out) >= max {
		return out[:max]
	}

	taken := make(map[uint]bool, len(out)+1)
	for _, img := range out {
		taken[img.ID] = true
	}
	if main := p.MainImage(); main != nil {
		taken[main.ID] = true
	}
	for _, img := range p.Images {
		if len(out) >= max {
			break
		}
		if taken[img.ID] || img.IsFeatured {
			continue
		}
		out = append(out, img)
	}
	return out
}

func placeCoverGrid(page *Page, images []models.PropertyImage, originX, originY, totalW, totalH float64) {
	cellW, cellH := CellSize(totalW, totalH, 2, 2, coverGridGutter)
	for i, img := range images {
		if i >= 4 {
			break
		}
		row, col := i/2, i%2
		x, y := CellOrigin(originX+coverGridGutter, originY+coverGridGutter, row, col, cellW, cellH, coverGridGutter)
		page.add(ImageBox{URL: img.URL, X: x, Y: y, W: cellW - coverGridGutter, H: cellH - coverGridGutter})
	}
}

// FormatPrice renders a cent amount as a euro price, falling back to a
// neutral label when no price is recorded.
func FormatPrice(cents int64) string {
	if cents <= 0 {
		return "Price on request"
	}

	euros := cents / 100
	s := fmt.Sprintf("%d", euros)
	var grouped []byte
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, ch)
	}
	return "€ " + string(grouped)
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}
