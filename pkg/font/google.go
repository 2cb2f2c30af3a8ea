package font

import (
	"strings"
)

// FontRequest names a family and, optionally, the variants to request for it
type FontRequest struct {
	Family   string   `json:"family"`
	Variants []string `json:"variants,omitempty"`
}

// BuildGoogleFontsURL creates a CSS2 stylesheet URL covering every request.
//
// Example: https://fonts.googleapis.com/css2?family=Noto+Sans+JP:regular,700&display=swap
//
// Variant tokens are passed through unvalidated.
func BuildGoogleFontsURL(reqs []FontRequest) string {
	params := make([]string, 0, len(reqs))
	for _, r := range reqs {
		param := "family=" + familyParam(r.Family)
		if len(r.Variants) > 0 {
			param += ":" + strings.Join(r.Variants, ",")
		}
		params = append(params, param)
	}
	urlsBuilt.Inc("css2")
	return GoogleFontsAPI + "?" + strings.Join(params, "&") + "&" + DisplaySwap
}

// StylesheetURL is the URL LoadGoogleFont injects for a catalog font.
// It uses a wght axis list separated by ";&wght=", which differs from
// BuildGoogleFontsURL. Both forms are kept as they are served today.
func StylesheetURL(f Font) string {
	urlsBuilt.Inc("loader")
	return GoogleFontsAPI + "?family=" + familyParam(f.Family) +
		":wght@" + strings.Join(f.Variants, ";&wght=") + "&" + DisplaySwap
}

// RequestsFor turns catalog fonts into requests carrying all their variants
func RequestsFor(fonts ...Font) []FontRequest {
	reqs := make([]FontRequest, 0, len(fonts))
	for _, f := range fonts {
		reqs = append(reqs, FontRequest{Family: f.Family, Variants: f.Variants})
	}
	return reqs
}

// familyParam replaces spaces with '+', the only escaping Google Fonts needs
// for family names
func familyParam(family string) string {
	return strings.ReplaceAll(family, " ", "+")
}
