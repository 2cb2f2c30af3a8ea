// plat-fonts CLI - browse the font catalog and build stylesheet URLs
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joeblew999/plat-fonts/pkg/font"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		listCmd(os.Args[2:])
	case "show":
		showCmd(os.Args[2:])
	case "category":
		categoryCmd(os.Args[2:])
	case "url":
		urlCmd(os.Args[2:])
	case "version":
		fmt.Println("plat-fonts v0.1.0")
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`plat-fonts - Google Fonts catalog CLI

Usage:
  plat-fonts <command> [options]

Commands:
  list       List font families by category
  show       Show one font family
  category   List the fonts in a category
  url        Build a Google Fonts stylesheet URL
  version    Show version
  help       Show this help

Examples:
  plat-fonts list
  plat-fonts show -family="Noto Sans JP"
  plat-fonts category -name="Sans Serif"
  plat-fonts url -family=Roboto,Inter -variants=regular,700`)
}

func listCmd(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	plain := fs.Bool("plain", false, "Print family names only, one per line")
	fs.Parse(args)

	if *plain {
		for _, family := range font.AllFamilies() {
			fmt.Println(family)
		}
		return
	}

	for _, c := range font.Categories() {
		fmt.Printf("%s:\n", c.Name)
		for _, f := range c.Fonts {
			fmt.Printf("  • %s (%d variants)\n", f.Family, len(f.Variants))
		}
	}
}

func showCmd(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	family := fs.String("family", "", "Font family")
	fs.Parse(args)

	if *family == "" {
		fmt.Println("Error: -family is required")
		os.Exit(1)
	}

	f, ok := font.FontByFamily(*family)
	if !ok {
		fmt.Printf("Font not found: %s\n", *family)
		os.Exit(1)
	}

	fmt.Printf("Family:     %s\n", f.Family)
	fmt.Printf("Display:    %s\n", f.DisplayName)
	fmt.Printf("Category:   %s\n", f.Category)
	fmt.Printf("Variants:   %s\n", strings.Join(f.Variants, ", "))
	fmt.Printf("Stack:      %s\n", font.FallbackStack(f.Family))
	fmt.Printf("Stylesheet: %s\n", font.BuildGoogleFontsURL(font.RequestsFor(f)))
}

func categoryCmd(args []string) {
	fs := flag.NewFlagSet("category", flag.ExitOnError)
	name := fs.String("name", "", "Category name")
	fs.Parse(args)

	if *name == "" {
		fmt.Printf("Error: -name is required (one of: %s)\n", strings.Join(font.CategoryNames(), ", "))
		os.Exit(1)
	}

	fonts := font.FontsByCategory(*name)
	if len(fonts) == 0 {
		fmt.Printf("No fonts in category %q\n", *name)
		return
	}
	for _, f := range fonts {
		fmt.Printf("  • %s\n", f.Family)
	}
}

func urlCmd(args []string) {
	fs := flag.NewFlagSet("url", flag.ExitOnError)
	families := fs.String("family", "", "Comma-separated font families")
	variants := fs.String("variants", "", "Comma-separated variants applied to every family")
	fs.Parse(args)

	reqs := parseRequests(*families, *variants)
	if len(reqs) == 0 {
		fmt.Println("Error: -family is required")
		os.Exit(1)
	}

	fmt.Println(font.BuildGoogleFontsURL(reqs))
}

func parseRequests(families, variants string) []font.FontRequest {
	var vs []string
	for _, v := range strings.Split(variants, ",") {
		if v = strings.TrimSpace(v); v != "" {
			vs = append(vs, v)
		}
	}

	var reqs []font.FontRequest
	for _, f := range strings.Split(families, ",") {
		if f = strings.TrimSpace(f); f != "" {
			reqs = append(reqs, font.FontRequest{Family: f, Variants: vs})
		}
	}
	return reqs
}
