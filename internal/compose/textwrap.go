package compose

import "strings"

// MeasureFunc returns the rendered width in points of s at the given font
// size. The PDF renderer supplies the target engine's own measurement;
// composition never wraps on fixed character counts.
type MeasureFunc func(s string, fontSize float64) float64

// ApproximateMeasure estimates Helvetica metrics for callers without a
// rendering engine at hand (tests, previews).
func ApproximateMeasure(s string, fontSize float64) float64 {
	return float64(len([]rune(s))) * fontSize * 0.5
}

// WrapText greedily wraps text into lines no wider than width. Words longer
// than the width get a line of their own rather than being split.
func WrapText(text string, width, fontSize float64, measure MeasureFunc) []string {
	if measure == nil {
		measure = ApproximateMeasure
	}

	var lines []string
	for _, paragraph := range strings.Split(strings.TrimSpace(text), "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if measure(candidate, fontSize) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
