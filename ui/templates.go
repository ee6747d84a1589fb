// Package ui renders the dashboard pages. The strike dashboard is a fully
// static HTML file (all chart data inlined as JSON, plotly.js from a CDN);
// the ops dashboard can render the same way, or be served live.
package ui

import(
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Parsed once; the CLIs and the HTTP handlers share it.
var dashboardTemplates = template.Must(
	template.New("").Funcs(TemplateFuncMap()).ParseFS(templateFS, "templates/*.html"))
