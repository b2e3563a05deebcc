package layout

// SectionType identifies one brochure page-type slot.
type SectionType string

const (
	SectionCover      SectionType = "cover"
	SectionDetails    SectionType = "details"
	SectionFloorplans SectionType = "floorplans"
	SectionLocation   SectionType = "location"
	SectionAreas      SectionType = "areas"
	SectionContact    SectionType = "contact"
)

// ElementType is the closed set of content block kinds that can be placed
// inside a container column.
type ElementType string

const (
	ElementKeyInfo     ElementType = "keyInfo"
	ElementFeatures    ElementType = "features"
	ElementDescription ElementType = "description"
	ElementImages      ElementType = "images"
	ElementText        ElementType = "text"
	ElementHeader      ElementType = "header"
	ElementGlobal      ElementType = "global"
)

// ContentElement is a placed content block. ColumnIndex is nil for elements
// that have not been assigned to a column yet.
type ContentElement struct {
	ID          string      `json:"id"`
	Type        ElementType `json:"type"`
	Title       string      `json:"title"`
	ColumnIndex *int        `json:"columnIndex,omitempty"`
}

// Container is a horizontal row of columns. ColumnWidths holds one relative
// flex weight per column; keeping its length equal to Columns is the caller's
// responsibility when Columns changes.
type Container struct {
	ID           string           `json:"id"`
	Columns      int              `json:"columns"`
	ColumnWidths []int            `json:"columnWidths"`
	Elements     []ContentElement `json:"elements"`
}

// Design is the per-section visual configuration owned by its section.
type Design struct {
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	TextColor       string      `json:"textColor,omitempty"`
	Padding         int         `json:"padding,omitempty"`
	Containers      []Container `json:"containers"`
}

// Section is one logical brochure page-type. Its ID stays stable across
// reorders so drag-and-drop key matching and backend updates remain
// consistent.
type Section struct {
	ID     string      `json:"id"`
	Type   SectionType `json:"type"`
	Title  string      `json:"title"`
	Design Design      `json:"design"`
}

// GlobalElement is a reusable element descriptor available for placement in
// any container regardless of section type.
type GlobalElement struct {
	ID    string      `json:"id"`
	Type  ElementType `json:"type"`
	Title string      `json:"title"`
}

// ElementTemplate describes a suggested element for the side panel. It is not
// a constraint on what can actually be placed.
type ElementTemplate struct {
	Type  ElementType `json:"type"`
	Title string      `json:"title"`
}

// DefaultSections returns the fixed section list a new template starts with.
func DefaultSections() []Section {
	return []Section{
		{ID: "1", Type: SectionCover, Title: "Cover"},
		{ID: "2", Type: SectionDetails, Title: "Details"},
		{ID: "3", Type: SectionFloorplans, Title: "Floorplans"},
		{ID: "4", Type: SectionLocation, Title: "Location"},
		{ID: "5", Type: SectionAreas, Title: "Areas"},
		{ID: "6", Type: SectionContact, Title: "Contact"},
	}
}

// GlobalElements returns the fixed catalog of cross-section element
// descriptors.
func GlobalElements() []GlobalElement {
	return []GlobalElement{
		{ID: "global-header", Type: ElementGlobal, Title: "Header"},
		{ID: "global-footer", Type: ElementGlobal, Title: "Footer"},
		{ID: "global-price", Type: ElementGlobal, Title: "Price"},
		{ID: "global-title", Type: ElementGlobal, Title: "Property Title"},
		{ID: "global-featured-image", Type: ElementGlobal, Title: "Featured Image"},
	}
}

// DefaultElementCatalog maps each section type to the element templates the
// side panel suggests for it.
func DefaultElementCatalog() map[SectionType][]ElementTemplate {
	return map[SectionType][]ElementTemplate{
		SectionCover: {
			{Type: ElementImages, Title: "Main Image"},
			{Type: ElementHeader, Title: "Title"},
		},
		SectionDetails: {
			{Type: ElementKeyInfo, Title: "Key Information"},
			{Type: ElementFeatures, Title: "Features"},
			{Type: ElementDescription, Title: "Description"},
		},
		SectionFloorplans: {
			{Type: ElementImages, Title: "Floorplan Images"},
		},
		SectionLocation: {
			{Type: ElementText, Title: "Location Description"},
			{Type: ElementImages, Title: "Map"},
		},
		SectionAreas: {
			{Type: ElementImages, Title: "Area Gallery"},
			{Type: ElementText, Title: "Area Description"},
		},
		SectionContact: {
			{Type: ElementText, Title: "Agency Details"},
			{Type: ElementImages, Title: "Logo"},
		},
	}
}
