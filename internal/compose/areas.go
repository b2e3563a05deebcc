package compose

import "estate-backoffice/internal/models"

const (
	areaRowsPerPage  = 3
	areaCellMarginPc = 0.01 // 1% of content width per cell side
)

// AreaPageCount returns how many gallery pages an area needs:
// ceil(imageCount / (columns*3)), with a minimum of one page so an empty
// area still gets its header page.
func AreaPageCount(imageCount, columns int) int {
	if columns < 1 {
		columns = models.DefaultAreaColumns
	}
	perPage := columns * areaRowsPerPage
	pages := (imageCount + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ComposeAreaPages lays out one area's gallery: `columns` x 3 images per
// page. The first page carries the title and description header; follow-up
// pages show only the grid. Cell widths are percentage-derived
// (100%/columns minus a fixed 1% margin) converted to the page's absolute
// units.
func ComposeAreaPages(area *models.PropertyArea, style Style, size PageSize) []Page {
	m := DefaultMargins
	columns := area.Columns
	if columns < 1 {
		columns = models.DefaultAreaColumns
	}

	contentW := size.ContentWidth(m)
	cellMargin := contentW * areaCellMarginPc
	cellW := contentW/float64(columns) - cellMargin
	perPage := columns * areaRowsPerPage

	var pages []Page
	for pageIdx := 0; pageIdx < AreaPageCount(len(area.Images), columns); pageIdx++ {
		page := Page{Size: size}
		gridTop := m.Top

		if pageIdx == 0 {
			page.add(TextBlock{Text: area.Title, X: m.Left, Y: m.Top + 16, FontSize: 16, Color: style.Primary, Bold: true})
			gridTop = m.Top + 28

			for i, line := range WrapText(area.Description, contentW, 10, style.measure()) {
				page.add(TextBlock{Text: line, X: m.Left, Y: gridTop + 14 + float64(i)*14, FontSize: 10, Color: ColorBlack})
				gridTop += 14
			}
			gridTop += 24
		}

		cellH := (size.Height - m.Bottom - gridTop) / areaRowsPerPage

		start := pageIdx * perPage
		for i := start; i < len(area.Images) && i < start+perPage; i++ {
			slot := i - start
			row, col := slot/columns, slot%columns
			x := m.Left + float64(col)*(cellW+cellMargin)
			y := gridTop + float64(row)*cellH
			page.add(ImageBox{URL: area.Images[i].URL, X: x, Y: y, W: cellW, H: cellH - cellMargin})
		}

		pages = append(pages, page)
	}
	return pages
}

// ComposeFloorplanPages lays out floorplan drawings two per page, stacked
// vertically with the plan name as a caption.
func ComposeFloorplanPages(plans []models.PropertyImage, style Style, size PageSize) []Page {
	if len(plans) == 0 {
		return nil
	}

	m := DefaultMargins
	var pages []Page
	for start := 0; start < len(plans); start += 2 {
		page := Page{Size: size}
		page.add(TextBlock{Text: "Floorplans", X: m.Left, Y: m.Top + 16, FontSize: 16, Color: style.Primary, Bold: true})

		slotH := (size.ContentHeight(m) - 40) / 2
		for i := start; i < len(plans) && i < start+2; i++ {
			y := m.Top + 32 + float64(i-start)*(slotH+8)
			page.add(ImageBox{URL: plans[i].URL, X: m.Left, Y: y, W: size.ContentWidth(m), H: slotH})
		}
		pages = append(pages, page)
	}
	return pages
}
