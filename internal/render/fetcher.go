package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"estate-backoffice/pkg/validator"
)

const maxImageBytes = 20 << 20

// ImageFetcher loads brochure image bytes and reports the PDF engine's image
// type tag ("JPG", "PNG", "GIF").
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

type httpImageFetcher struct {
	client *http.Client
}

func NewHTTPImageFetcher() ImageFetcher {
	return &httpImageFetcher{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *httpImageFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("invalid image url: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image body: %w", err)
	}

	imageType, err := pdfImageType(data)
	if err != nil {
		return nil, "", err
	}
	return data, imageType, nil
}

// pdfImageType maps sniffed content to the type tag the PDF engine expects.
func pdfImageType(data []byte) (string, error) {
	switch validator.DetectFileType(data) {
	case "image/jpeg":
		return "JPG", nil
	case "image/png":
		return "PNG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported image format")
	}
}
