package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/progress"
)

// DiagramsDir is the subdirectory of a built site holding exported diagrams.
const DiagramsDir = "diagrams"

// SiteGenerator writes the static presentation: the page, its assets and
// the exported diagrams.
type SiteGenerator struct {
	Catalog   *catalog.Catalog
	OutputDir string
	Title     string
	Export    ExportOptions
	Reporter  progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator writing to outputDir.
func NewSiteGenerator(cat *catalog.Catalog, outputDir string) *SiteGenerator {
	return &SiteGenerator{
		Catalog:   cat,
		OutputDir: outputDir,
		Reporter:  progress.Nop{},
	}
}

// Generate builds the full static site. Returns the number of files written.
func (g *SiteGenerator) Generate() (int, error) {
	if g.Catalog == nil {
		return 0, fmt.Errorf("no catalog to generate from")
	}
	b, err := NewBuilder(g.Catalog, Options{Title: g.Title})
	if err != nil {
		return 0, err
	}
	page, err := b.Page()
	if err != nil {
		return 0, fmt.Errorf("building page: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	assets := []struct {
		name string
		data []byte
	}{
		{"index.html", page},
		{"style.css", []byte(cssContent)},
		{"script.js", []byte(jsContent)},
	}
	for _, a := range assets {
		if err := os.WriteFile(filepath.Join(g.OutputDir, a.name), a.data, 0o644); err != nil {
			return 0, err
		}
	}

	written, err := ExportDiagrams(g.Catalog, filepath.Join(g.OutputDir, DiagramsDir), g.Export, g.Reporter)
	if err != nil {
		return 0, fmt.Errorf("exporting diagrams: %w", err)
	}
	return len(assets) + len(written), nil
}

// Assets returns the stylesheet and script served next to a live page.
func Assets() map[string][]byte {
	return map[string][]byte{
		"style.css": []byte(cssContent),
		"script.js": []byte(jsContent),
	}
}
