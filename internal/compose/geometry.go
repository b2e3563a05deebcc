package compose

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSize describes a fixed output page in points (1" = 72pt).
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	A4Portrait  = PageSize{Name: "A4", Width: 595.28, Height: 841.89}
	A4Landscape = PageSize{Name: "A4L", Width: 841.89, Height: 595.28}
)

// Landscape reports whether the page is wider than tall.
func (s PageSize) Landscape() bool {
	return s.Width > s.Height
}

// Margins is the content inset applied to every composed page.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

var DefaultMargins = Margins{Top: 40, Right: 36, Bottom: 40, Left: 36}

// ContentWidth returns the horizontal space left inside the margins.
func (s PageSize) ContentWidth(m Margins) float64 {
	return s.Width - m.Left - m.Right
}

// ContentHeight returns the vertical space left inside the margins.
func (s PageSize) ContentHeight(m Margins) float64 {
	return s.Height - m.Top - m.Bottom
}

// CellSize divides an area into a gutter-separated grid:
// cellWidth = totalWidth/cols - gutter (and the same for rows).
func CellSize(totalW, totalH float64, cols, rows int, gutter float64) (float64, float64) {
	return totalW/float64(cols) - gutter, totalH/float64(rows) - gutter
}

// CellOrigin returns the top-left corner of cell (row, col):
// origin + col*(cellWidth+gutter), origin + row*(cellHeight+gutter).
func CellOrigin(originX, originY float64, row, col int, cellW, cellH, gutter float64) (float64, float64) {
	return originX + float64(col)*(cellW+gutter), originY + float64(row)*(cellH+gutter)
}

// Color is an RGB triple ready for the rendering target.
type Color struct {
	R, G, B uint8
}

var (
	ColorWhite = Color{255, 255, 255}
	ColorBlack = Color{0, 0, 0}
	ColorGray  = Color{120, 120, 120}
)

// ParseColor parses a #rrggbb or #rgb hex string. Invalid input falls back
// to the provided default so a bad settings value never aborts generation.
func ParseColor(hex string, fallback Color) Color {
	c, err := parseHex(hex)
	if err != nil {
		return fallback
	}
	return c
}

func parseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
