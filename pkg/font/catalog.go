package font

// Font is a catalog entry for a Google Fonts family
type Font struct {
	Family      string   `json:"family"`
	Variants    []string `json:"variants"`
	Category    string   `json:"category"`
	DisplayName string   `json:"displayName"`
}

// Category groups fonts under a display label
type Category struct {
	Name  string `json:"name"`
	Fonts []Font `json:"fonts"`
}

// catalog is built once at package init and never mutated. Accessors hand out
// copies.
var catalog = []Category{
	{
		Name: CategorySansSerif,
		Fonts: []Font{
			{
				Family:      "Roboto",
				Variants:    []string{"100", "300", "regular", "500", "700", "900"},
				Category:    "sans-serif",
				DisplayName: "Roboto",
			},
			{
				Family:      "Inter",
				Variants:    []string{"100", "200", "300", "regular", "500", "600", "700", "800", "900"},
				Category:    "sans-serif",
				DisplayName: "Inter",
			},
			{
				Family:      "Noto Sans JP",
				Variants:    []string{"100", "200", "300", "regular", "500", "600", "700", "800", "900"},
				Category:    "sans-serif",
				DisplayName: "Noto Sans JP",
			},
		},
	},
	{
		Name: CategorySerif,
		Fonts: []Font{
			{
				Family:      "Noto Serif JP",
				Variants:    []string{"200", "300", "regular", "500", "600", "700", "900"},
				Category:    "serif",
				DisplayName: "Noto Serif JP",
			},
		},
	},
}

// FontByFamily returns the catalog font with the given family name.
// Matching is exact and case-sensitive.
func FontByFamily(family string) (Font, bool) {
	f, ok := findFont(family)
	if !ok {
		lookupsTotal.Inc("miss")
		return Font{}, false
	}
	lookupsTotal.Inc("hit")
	return f.clone(), true
}

// findFont scans the catalog without touching the lookup metric. The result
// shares its Variants with the catalog and must not be handed out.
func findFont(family string) (*Font, bool) {
	for i := range catalog {
		for j := range catalog[i].Fonts {
			if catalog[i].Fonts[j].Family == family {
				return &catalog[i].Fonts[j], true
			}
		}
	}
	return nil, false
}

// AllFamilies returns every family name in catalog order
func AllFamilies() []string {
	var families []string
	for _, c := range catalog {
		for _, f := range c.Fonts {
			families = append(families, f.Family)
		}
	}
	return families
}

// FontsByCategory returns the fonts of the named category. An unknown name
// yields an empty slice, same as a category with no fonts.
func FontsByCategory(name string) []Font {
	for _, c := range catalog {
		if c.Name == name {
			return cloneFonts(c.Fonts)
		}
	}
	return []Font{}
}

// Categories returns a copy of the whole catalog
func Categories() []Category {
	out := make([]Category, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, Category{Name: c.Name, Fonts: cloneFonts(c.Fonts)})
	}
	return out
}

// CategoryNames returns the category labels in catalog order
func CategoryNames() []string {
	names := make([]string, 0, len(catalog))
	for _, c := range catalog {
		names = append(names, c.Name)
	}
	return names
}

func (f Font) clone() Font {
	f.Variants = append([]string(nil), f.Variants...)
	return f
}

func cloneFonts(fonts []Font) []Font {
	out := make([]Font, 0, len(fonts))
	for _, f := range fonts {
		out = append(out, f.clone())
	}
	return out
}
