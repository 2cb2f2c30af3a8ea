package catalog

import (
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/joeblew999/plat-fonts/pkg/font"
)

func toFontItem(f font.Font) types.FontItem {
	return types.FontItem{
		Family:        f.Family,
		Variants:      f.Variants,
		Category:      f.Category,
		DisplayName:   f.DisplayName,
		StylesheetUrl: font.BuildGoogleFontsURL(font.RequestsFor(f)),
		FontStack:     font.FallbackStack(f.Family),
	}
}
