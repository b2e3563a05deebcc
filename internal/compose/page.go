package compose

// Primitive is one absolutely positioned visual unit on a page. Pages are
// derived output: computed fresh per generation call, never persisted.
type Primitive interface {
	primitive()
}

// ImageBox places an image by URL inside a fixed rectangle.
type ImageBox struct {
	URL        string
	X, Y, W, H float64
}

// TextBlock places a single line of text. W is the wrapping width the line
// was measured against; the renderer does not re-wrap.
type TextBlock struct {
	Text     string
	X, Y     float64
	FontSize float64
	Color    Color
	Bold     bool
}

// Panel is a filled rectangle drawn behind text and images.
type Panel struct {
	X, Y, W, H float64
	Fill       Color
}

func (ImageBox) primitive()  {}
func (TextBlock) primitive() {}
func (Panel) primitive()     {}

// Page is an ordered list of primitives for one fixed-size output page.
// Number and Total are stamped by the assembler.
type Page struct {
	Size   PageSize
	Number int
	Total  int
	Items  []Primitive
}

func (p *Page) add(items ...Primitive) {
	p.Items = append(p.Items, items...)
}

// Document is the assembled page sequence for one brochure.
type Document struct {
	Size  PageSize
	Pages []Page
}

// Style carries the per-agency palette every composer uses.
type Style struct {
	Primary   Color
	Secondary Color
	Measure   MeasureFunc
}

func (s Style) measure() MeasureFunc {
	if s.Measure != nil {
		return s.Measure
	}
	return ApproximateMeasure
}
