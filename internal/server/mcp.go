package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/joeblew999/plat-fonts/pkg/usage"
	"github.com/zeromicro/go-zero/mcp"
)

// RegisterMCPTools registers the font catalog tools and resources.
func RegisterMCPTools(s mcp.McpServer, recorder *usage.Recorder) {
	s.RegisterTool(mcp.Tool{
		Name:        "list_fonts",
		Description: "List every font family in the catalog, grouped by category.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{},
		},
		Handler: listFontsTool,
	})

	s.RegisterTool(mcp.Tool{
		Name:        "get_font",
		Description: "Look up a font family and return its variants, category and stylesheet URL.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"family": map[string]any{
					"type":        "string",
					"description": "Exact family name (e.g., Roboto, Noto Sans JP)",
				},
			},
			Required: []string{"family"},
		},
		Handler: getFontTool(recorder),
	})

	s.RegisterTool(mcp.Tool{
		Name:        "fonts_by_category",
		Description: "List the fonts in a category. Unknown categories return an empty list.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"category": map[string]any{
					"type":        "string",
					"description": "Category name (e.g., Sans Serif, Serif)",
				},
			},
			Required: []string{"category"},
		},
		Handler: fontsByCategoryTool,
	})

	s.RegisterTool(mcp.Tool{
		Name:        "build_stylesheet_url",
		Description: "Build a Google Fonts CSS2 stylesheet URL for one or more families.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"fonts": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"family":   map[string]any{"type": "string"},
							"variants": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"required": []string{"family"},
					},
					"description": "Families with optional variant tokens (e.g., [{\"family\": \"Roboto\", \"variants\": [\"regular\", \"700\"]}])",
				},
			},
			Required: []string{"fonts"},
		},
		Handler: buildStylesheetTool(recorder),
	})

	s.RegisterResource(mcp.Resource{
		Name:        "catalog",
		URI:         "fonts://catalog",
		Description: "Font catalog by category",
		MimeType:    "text/plain",
		Handler: func(ctx context.Context) (mcp.ResourceContent, error) {
			return mcp.ResourceContent{
				URI:      "fonts://catalog",
				MimeType: "text/plain",
				Text:     catalogText(),
			}, nil
		},
	})
}

func listFontsTool(ctx context.Context, p map[string]any) (any, error) {
	categories := make([]map[string]any, 0)
	for _, c := range font.Categories() {
		families := make([]string, 0, len(c.Fonts))
		for _, f := range c.Fonts {
			families = append(families, f.Family)
		}
		categories = append(categories, map[string]any{
			"name":     c.Name,
			"families": families,
		})
	}

	return map[string]any{
		"categories": categories,
		"count":      len(font.AllFamilies()),
	}, nil
}

func getFontTool(recorder *usage.Recorder) func(context.Context, map[string]any) (any, error) {
	return func(ctx context.Context, p map[string]any) (any, error) {
		var args struct {
			Family string `json:"family"`
		}
		if err := mcp.ParseArguments(p, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}

		f, ok := font.FontByFamily(args.Family)
		recorder.Lookup(args.Family, usage.SourceMCP, ok)
		if !ok {
			return nil, fmt.Errorf("font not found: %s", args.Family)
		}

		return map[string]any{
			"family":         f.Family,
			"display_name":   f.DisplayName,
			"category":       f.Category,
			"variants":       f.Variants,
			"stylesheet_url": font.BuildGoogleFontsURL(font.RequestsFor(f)),
			"font_stack":     font.FallbackStack(f.Family),
		}, nil
	}
}

func fontsByCategoryTool(ctx context.Context, p map[string]any) (any, error) {
	var args struct {
		Category string `json:"category"`
	}
	if err := mcp.ParseArguments(p, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	fonts := font.FontsByCategory(args.Category)
	return map[string]any{
		"category": args.Category,
		"fonts":    fonts,
		"count":    len(fonts),
	}, nil
}

func buildStylesheetTool(recorder *usage.Recorder) func(context.Context, map[string]any) (any, error) {
	return func(ctx context.Context, p map[string]any) (any, error) {
		var args struct {
			Fonts []struct {
				Family   string   `json:"family"`
				Variants []string `json:"variants,optional"`
			} `json:"fonts"`
		}
		if err := mcp.ParseArguments(p, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		if len(args.Fonts) == 0 {
			return nil, fmt.Errorf("fonts is required")
		}

		reqs := make([]font.FontRequest, 0, len(args.Fonts))
		for _, f := range args.Fonts {
			if strings.TrimSpace(f.Family) == "" {
				return nil, fmt.Errorf("family is required")
			}
			reqs = append(reqs, font.FontRequest{Family: f.Family, Variants: f.Variants})
		}
		for _, r := range reqs {
			recorder.Record(r.Family, usage.EventBuildURL, usage.SourceMCP)
		}

		return map[string]any{
			"url": font.BuildGoogleFontsURL(reqs),
		}, nil
	}
}

func catalogText() string {
	var b strings.Builder
	b.WriteString("Font catalog:\n")
	for _, c := range font.Categories() {
		fmt.Fprintf(&b, "%s:\n", c.Name)
		for _, f := range c.Fonts {
			fmt.Fprintf(&b, "- %s (%s)\n", f.Family, strings.Join(f.Variants, ", "))
		}
	}
	return b.String()
}
