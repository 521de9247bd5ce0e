package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/folio"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates = must(fs.Sub(templatesFS, "templates"))

// DashboardMarkdown renders the Dashboard to a markdown string.
func DashboardMarkdown(d *folio.Dashboard) string {
	partials := map[string]string{
		"dashboard_title":       "dashboard_title.md",
		"dashboard_holdings":    "dashboard_holdings.md",
		"dashboard_performance": "dashboard_performance.md",
		"dashboard_composition": "dashboard_composition.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// HoldingsMarkdown renders only the holdings section of the Dashboard.
func HoldingsMarkdown(d *folio.Dashboard) string {
	return renderTemplate("holdings", "dashboard_holdings.md", nil, d)
}

// PerformanceMarkdown renders only the performance section of the Dashboard.
func PerformanceMarkdown(d *folio.Dashboard) string {
	return renderTemplate("performance", "dashboard_performance.md", nil, d)
}

// SymbolsMarkdown renders the price reference table.
func SymbolsMarkdown(prices *folio.PriceTable) string {
	return renderTemplate("symbols", "symbols.md", nil, prices.Rows())
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
