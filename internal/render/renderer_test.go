package render

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"estate-backoffice/internal/compose"
)

// 1x1 transparent PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

type stubFetcher struct {
	calls map[string]int
	fail  map[string]bool
}

func newStubFetcher(failing ...string) *stubFetcher {
	f := &stubFetcher{calls: map[string]int{}, fail: map[string]bool{}}
	for _, url := range failing {
		f.fail[url] = true
	}
	return f
}

func (f *stubFetcher) Fetch(_ context.Context, url string) ([]byte, string, error) {
	f.calls[url]++
	if f.fail[url] {
		return nil, "", errors.New("connection refused")
	}
	return tinyPNG, "PNG", nil
}

func testDocument() *compose.Document {
	page := compose.Page{Size: compose.A4Portrait, Number: 1}
	page.Items = []compose.Primitive{
		compose.Panel{X: 0, Y: 0, W: 100, H: 40, Fill: compose.Color{R: 245, G: 245, B: 245}},
		compose.TextBlock{Text: "Canal House", X: 40, Y: 60, FontSize: 18, Bold: true},
		compose.ImageBox{URL: "https://img.example/good.png", X: 40, Y: 100, W: 200, H: 150},
		compose.ImageBox{URL: "https://img.example/broken.png", X: 260, Y: 100, W: 200, H: 150},
	}
	return &compose.Document{Size: compose.A4Portrait, Pages: []compose.Page{page}}
}

func TestRender_FailedImageLeavesSlotBlank(t *testing.T) {
	fetcher := newStubFetcher("https://img.example/broken.png")
	r := New(fetcher)

	pdf, err := r.Render(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("a failed image fetch must not abort rendering: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got %d bytes without the header", len(pdf))
	}

	if fetcher.calls["https://img.example/good.png"] != 1 {
		t.Fatalf("expected the good image to be fetched once, got %d", fetcher.calls["https://img.example/good.png"])
	}
}

func TestRender_FailedFetchNotRetriedWithinRun(t *testing.T) {
	doc := testDocument()
	second := compose.Page{Size: compose.A4Portrait, Number: 2}
	second.Items = []compose.Primitive{
		compose.ImageBox{URL: "https://img.example/broken.png", X: 40, Y: 100, W: 200, H: 150},
	}
	doc.Pages = append(doc.Pages, second)

	fetcher := newStubFetcher("https://img.example/broken.png")
	r := New(fetcher)

	if _, err := r.Render(context.Background(), doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls["https://img.example/broken.png"] != 1 {
		t.Fatalf("a failed URL must be fetched once per run, got %d calls", fetcher.calls["https://img.example/broken.png"])
	}
}

func TestRender_EmptyDocumentRejected(t *testing.T) {
	r := New(newStubFetcher())
	if _, err := r.Render(context.Background(), &compose.Document{}); err == nil {
		t.Fatalf("expected an error for a document without pages")
	}
	if _, err := r.Render(context.Background(), nil); err == nil {
		t.Fatalf("expected an error for a nil document")
	}
}
