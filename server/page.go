package server

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
)

//go:embed page.html.tmpl
var pageTemplate string

var page = template.Must(template.New("page").Parse(pageTemplate))

// DefaultPage renders the built-in host page with one container div per id.
func DefaultPage(containers []string) (string, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, struct{ Containers []string }{containers}); err != nil {
		return "", fmt.Errorf("render default page: %w", err)
	}
	return buf.String(), nil
}

// LoadPage returns the host page at path, or the built-in page when path
// is empty.
func LoadPage(path string, containers []string) (string, error) {
	if path == "" {
		return DefaultPage(containers)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}
	return string(b), nil
}
