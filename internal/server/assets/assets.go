// Package assets embeds the static CSS and HTML templates served by
// internal/server's browser-facing upload index page, so tocd ships
// as a single binary with no external asset directory to deploy
// alongside it.
package assets

import (
	"embed"
	"html/template"
)

//go:embed static
var Static embed.FS

//go:embed templates/*.html.tmpl
var templateFiles embed.FS

// Templates parses every embedded template once at package init.
var Templates = template.Must(template.ParseFS(templateFiles, "templates/*.html.tmpl"))
