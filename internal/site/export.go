package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/diagrams"
	"github.com/ziadkadry99/ddo-deck/internal/progress"
	"github.com/ziadkadry99/ddo-deck/internal/render"
)

// Export formats.
const (
	FormatSVG      = "svg"
	FormatMermaid  = "mermaid"
	FormatMarkdown = "md"
)

// ErrUnknownFormat is returned for an export format outside the constants above.
var ErrUnknownFormat = errors.New("unknown export format")

// ExportOptions selects which diagrams are written and how.
type ExportOptions struct {
	// Formats defaults to svg only.
	Formats []string
	// Include and Exclude are doublestar patterns matched against diagram
	// ids. An empty Include selects everything.
	Include []string
	Exclude []string
}

// Selected reports whether a diagram id passes the include and exclude globs.
func (o ExportOptions) Selected(id string) (bool, error) {
	include := o.Include
	if len(include) == 0 {
		include = []string{"**"}
	}
	matched := false
	for _, p := range include {
		ok, err := doublestar.Match(p, id)
		if err != nil {
			return false, fmt.Errorf("include pattern %q: %w", p, err)
		}
		if ok {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}
	for _, p := range o.Exclude {
		ok, err := doublestar.Match(p, id)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

type exportFile struct {
	name string
	data func() ([]byte, error)
}

// ExportDiagrams writes the selected diagrams to dir in every requested
// format and returns the paths written. Kinds without a tabular form are
// skipped for the markdown format.
func ExportDiagrams(cat *catalog.Catalog, dir string, opts ExportOptions, reporter progress.Reporter) ([]string, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{FormatSVG}
	}
	for _, f := range formats {
		switch f {
		case FormatSVG, FormatMermaid, FormatMarkdown:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}

	r := render.New(cat)
	var files []exportFile
	for _, d := range cat.Diagrams {
		ok, err := opts.Selected(d.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		for _, f := range formats {
			files = append(files, exportFor(r, cat, d, f)...)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	reporter.Start(len(files))
	defer reporter.Finish()

	written := make([]string, 0, len(files))
	for i, f := range files {
		data, err := f.data()
		if err != nil {
			return written, fmt.Errorf("exporting %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
		reporter.Update(i+1, f.name)
	}
	return written, nil
}

func exportFor(r *render.Renderer, cat *catalog.Catalog, d *catalog.Diagram, format string) []exportFile {
	switch format {
	case FormatSVG:
		return []exportFile{{
			name: d.ID + ".svg",
			data: func() ([]byte, error) { return r.Standalone(d.ID) },
		}}
	case FormatMermaid:
		return []exportFile{{
			name: d.ID + ".mmd",
			data: func() ([]byte, error) { return []byte(diagrams.Mermaid(d)), nil },
		}}
	case FormatMarkdown:
		table := diagrams.Markdown(d, cat.Teams)
		if table == "" {
			return nil
		}
		return []exportFile{{
			name: d.ID + ".md",
			data: func() ([]byte, error) { return []byte(markdownDoc(d, table)), nil },
		}}
	}
	return nil
}

func markdownDoc(d *catalog.Diagram, table string) string {
	var b strings.Builder
	title := d.Title
	if title == "" {
		title = d.ID
	}
	b.WriteString("# " + title + "\n\n")
	b.WriteString("```mermaid\n" + diagrams.Mermaid(d) + "```\n\n")
	b.WriteString(table)
	return b.String()
}
