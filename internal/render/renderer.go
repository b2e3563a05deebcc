package render

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/go-pdf/fpdf"

	"estate-backoffice/internal/compose"
	"estate-backoffice/pkg/logger"
)

const fontFamily = "Helvetica"

// Renderer draws composed pages into a PDF document.
type Renderer struct {
	fetcher ImageFetcher
}

func New(fetcher ImageFetcher) *Renderer {
	if fetcher == nil {
		fetcher = NewHTTPImageFetcher()
	}
	return &Renderer{fetcher: fetcher}
}

// NewMeasure returns a text-measurement function backed by the PDF engine's
// own font metrics, so composition wraps text exactly the way the renderer
// will draw it.
func NewMeasure() compose.MeasureFunc {
	pdf := fpdf.New("P", "pt", "A4", "")
	var mu sync.Mutex
	return func(s string, fontSize float64) float64 {
		mu.Lock()
		defer mu.Unlock()
		pdf.SetFont(fontFamily, "", fontSize)
		return pdf.GetStringWidth(s)
	}
}

// Render draws every page of the document in sequence and returns the PDF
// bytes. A failed image fetch or draw leaves that slot blank and never
// aborts the run.
func (r *Renderer) Render(ctx context.Context, doc *compose.Document) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation(doc.Size),
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: doc.Size.Width, Ht: doc.Size.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	registered := map[string]string{}

	for _, page := range doc.Pages {
		pdf.AddPageFormat(orientation(page.Size), fpdf.SizeType{Wd: page.Size.Width, Ht: page.Size.Height})

		for _, item := range page.Items {
			switch prim := item.(type) {
			case compose.Panel:
				pdf.SetFillColor(int(prim.Fill.R), int(prim.Fill.G), int(prim.Fill.B))
				pdf.Rect(prim.X, prim.Y, prim.W, prim.H, "F")

			case compose.TextBlock:
				style := ""
				if prim.Bold {
					style = "B"
				}
				pdf.SetFont(fontFamily, style, prim.FontSize)
				pdf.SetTextColor(int(prim.Color.R), int(prim.Color.G), int(prim.Color.B))
				pdf.Text(prim.X, prim.Y, tr(prim.Text))

			case compose.ImageBox:
				r.drawImage(ctx, pdf, registered, prim, page.Number)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to produce PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawImage(ctx context.Context, pdf *fpdf.Fpdf, registered map[string]string, box compose.ImageBox, pageNum int) {
	if box.URL == "" {
		return
	}

	imageType, ok := registered[box.URL]
	if !ok {
		data, detectedType, err := r.fetcher.Fetch(ctx, box.URL)
		if err != nil {
			logger.Error(err, "Failed to load brochure image, leaving slot blank", map[string]interface{}{
				"url":  box.URL,
				"page": pageNum,
			})
			registered[box.URL] = ""
			return
		}

		opts := fpdf.ImageOptions{ImageType: detectedType}
		pdf.RegisterImageOptionsReader(box.URL, opts, bytes.NewReader(data))
		if pdf.Err() {
			logger.Error(pdf.Error(), "Failed to decode brochure image, leaving slot blank", map[string]interface{}{
				"url":  box.URL,
				"page": pageNum,
			})
			pdf.ClearError()
			registered[box.URL] = ""
			return
		}
		registered[box.URL] = detectedType
		imageType = detectedType
	}
	if imageType == "" {
		// Previous fetch or decode failed; keep the slot blank.
		return
	}

	pdf.ImageOptions(box.URL, box.X, box.Y, box.W, box.H, false, fpdf.ImageOptions{ImageType: imageType}, 0, "")
	if pdf.Err() {
		logger.Error(pdf.Error(), "Failed to draw brochure image", map[string]interface{}{
			"url":  box.URL,
			"page": pageNum,
		})
		pdf.ClearError()
	}
}

func orientation(size compose.PageSize) string {
	if size.Landscape() {
		return "L"
	}
	return "P"
}
