package font

import (
	"fmt"
	"strings"
)

const (
	sansFallback  = "Arial, Helvetica, sans-serif"
	serifFallback = "Georgia, 'Times New Roman', Times, serif"
	monoFallback  = "'Courier New', Courier, 'Lucida Console', monospace"
)

// FallbackStack returns a CSS font-family value that starts with family and
// falls back to widely installed faces of the same kind.
func FallbackStack(family string) string {
	return fmt.Sprintf("'%s', %s", family, fallbackFor(family))
}

func fallbackFor(family string) string {
	if f, ok := findFont(family); ok {
		switch f.Category {
		case "serif":
			return serifFallback
		case "monospace":
			return monoFallback
		}
		return sansFallback
	}

	// Not in the catalog, guess from the name
	lower := strings.ToLower(family)
	switch {
	case strings.Contains(lower, "serif") && !strings.Contains(lower, "sans"):
		return serifFallback
	case strings.Contains(lower, "mono") || strings.Contains(lower, "code") || strings.Contains(lower, "courier"):
		return monoFallback
	}
	return sansFallback
}
