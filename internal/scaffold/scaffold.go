package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// PageData is the substitution data for a project detail page.
type PageData struct {
	Title    string
	Slug     string
	Subtitle string
	Nav      string
}

// EnsurePage creates projectDir/index.html from the embedded template when it
// does not exist yet. An existing page is never touched — hand edits survive
// rebuilds. Returns true when a page was created.
func EnsurePage(projectDir, slug, title string) (bool, error) {
	pagePath := filepath.Join(projectDir, "index.html")
	if _, err := os.Stat(pagePath); err == nil {
		return false, nil
	}

	html, err := renderPage(PageData{Title: title, Slug: slug})
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(pagePath, html, 0644); err != nil {
		return false, fmt.Errorf("write %s: %w", pagePath, err)
	}
	return true, nil
}

func renderPage(data PageData) ([]byte, error) {
	tmpl, err := template.ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	var nav bytes.Buffer
	if err := tmpl.ExecuteTemplate(&nav, "nav.html.tmpl", data); err != nil {
		return nil, fmt.Errorf("render nav: %w", err)
	}
	data.Nav = nav.String()

	var page bytes.Buffer
	if err := tmpl.ExecuteTemplate(&page, "project.html.tmpl", data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return page.Bytes(), nil
}
