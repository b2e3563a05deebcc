package compose

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"estate-backoffice/internal/models"
)

var strictPolicy = bluemonday.StrictPolicy()

// stripMarkup reduces stored rich text to plain text. Descriptions are
// sanitized for web display and may still carry tags like <p> or <strong>;
// the PDF engine draws strings literally, so tags and entities must go
// before the text is wrapped.
func stripMarkup(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// plainTextProperty returns a copy of the property with every rich-text
// field flattened. The stored record keeps its markup for the web editor.
func plainTextProperty(p *models.Property) *models.Property {
	clean := *p
	clean.Description = stripMarkup(p.Description)
	clean.LocationDescription = stripMarkup(p.LocationDescription)

	if len(p.Areas) > 0 {
		clean.Areas = make([]models.PropertyArea, len(p.Areas))
		copy(clean.Areas, p.Areas)
		for i := range clean.Areas {
			clean.Areas[i].Description = stripMarkup(clean.Areas[i].Description)
		}
	}
	return &clean
}
