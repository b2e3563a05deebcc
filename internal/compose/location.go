package compose

import "estate-backoffice/internal/models"

// PlaceGroup is one nearby-place category, in order of first occurrence.
type PlaceGroup struct {
	Type   string
	Places []models.NearbyPlace
}

// GroupNearbyPlaces groups places by their type field, preserving the
// insertion order of each type's first occurrence.
func GroupNearbyPlaces(places []models.NearbyPlace) []PlaceGroup {
	index := map[string]int{}
	var groups []PlaceGroup
	for _, place := range places {
		i, ok := index[place.Type]
		if !ok {
			i = len(groups)
			index[place.Type] = i
			groups = append(groups, PlaceGroup{Type: place.Type})
		}
		groups[i].Places = append(groups[i].Places, place)
	}
	return groups
}

// ComposeLocation builds the location page. The page is emitted only when
// the property has a location description, a map image, or at least one
// nearby place; otherwise the second return is false and the page must be
// skipped before pagination, not after.
func ComposeLocation(p *models.Property, style Style, size PageSize) (Page, bool) {
	if !p.HasLocationContent() {
		return Page{}, false
	}

	m := DefaultMargins
	page := Page{Size: size}
	page.add(TextBlock{Text: "Location", X: m.Left, Y: m.Top + 16, FontSize: 16, Color: style.Primary, Bold: true})

	y := m.Top + 40.0
	if p.MapImageURL != "" {
		mapH := size.ContentHeight(m) * 0.4
		page.add(ImageBox{URL: p.MapImageURL, X: m.Left, Y: y, W: size.ContentWidth(m), H: mapH})
		y += mapH + 18
	}

	for _, line := range WrapText(p.LocationDescription, size.ContentWidth(m), 10, style.measure()) {
		page.add(TextBlock{Text: line, X: m.Left, Y: y + 10, FontSize: 10, Color: ColorBlack})
		y += 14
	}
	if p.LocationDescription != "" {
		y += 12
	}

	for _, group := range GroupNearbyPlaces(p.NearbyPlaces) {
		page.add(TextBlock{Text: group.Type, X: m.Left, Y: y + 12, FontSize: 11, Color: style.Primary, Bold: true})
		y += 18
		for _, place := range group.Places {
			label := place.Name
			if place.Distance != "" {
				label += " (" + place.Distance + ")"
			}
			page.add(TextBlock{Text: "• " + label, X: m.Left + 10, Y: y + 10, FontSize: 10, Color: ColorBlack})
			y += 14
		}
		y += 8
	}

	return page, true
}
