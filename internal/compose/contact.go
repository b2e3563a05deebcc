package compose

import "estate-backoffice/internal/models"

// ComposeContact builds the unconditional final page: the agency identity
// block plus an optional social-links panel.
func ComposeContact(settings *models.AgencySettings, style Style, size PageSize) Page {
	m := DefaultMargins
	page := Page{Size: size}

	bandH := size.Height * 0.3
	page.add(Panel{X: 0, Y: 0, W: size.Width, H: bandH, Fill: style.Primary})
	if settings.LogoURL != "" {
		page.add(ImageBox{URL: settings.LogoURL, X: m.Left, Y: bandH*0.5 - 30, W: 120, H: 60})
	}
	page.add(TextBlock{Text: settings.Name, X: m.Left + 140, Y: bandH*0.5 + 8, FontSize: 20, Color: ColorWhite, Bold: true})

	y := bandH + 50.0
	page.add(TextBlock{Text: "Contact", X: m.Left, Y: y, FontSize: 14, Color: style.Primary, Bold: true})
	y += 24

	for _, line := range []string{settings.Address, settings.Phone, settings.Email} {
		if line == "" {
			continue
		}
		page.add(TextBlock{Text: line, X: m.Left, Y: y, FontSize: 11, Color: ColorBlack})
		y += 18
	}

	if settings.HasSocialLinks() {
		y += 18
		page.add(TextBlock{Text: "Find us online", X: m.Left, Y: y, FontSize: 12, Color: style.Primary, Bold: true})
		y += 20
		for _, link := range []string{settings.WebsiteURL, settings.FacebookURL, settings.InstagramURL, settings.LinkedInURL} {
			if link == "" {
				continue
			}
			page.add(TextBlock{Text: link, X: m.Left, Y: y, FontSize: 10, Color: style.Secondary})
			y += 16
		}
	}

	return page
}
