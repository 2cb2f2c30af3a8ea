package font

const (
	// GoogleFontsAPI is the base URL for Google Fonts CSS API
	GoogleFontsAPI = "https://fonts.googleapis.com/css2"

	// DisplaySwap is appended to every stylesheet URL so text renders with a
	// fallback face until the web font arrives
	DisplaySwap = "display=swap"

	// RelStylesheet is the rel attribute of injected link elements
	RelStylesheet = "stylesheet"

	// CheckSize is the font size used when asking the host whether a family is usable
	CheckSize = "1em"

	// RegularVariant is the Google Fonts token for weight 400 upright
	RegularVariant = "regular"
)

// Category names in the catalog
const (
	CategorySansSerif = "Sans Serif"
	CategorySerif     = "Serif"
)
