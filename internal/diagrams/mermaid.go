package diagrams

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

// Mermaid renders any diagram as mermaid source. Context maps keep their
// layer grouping; every other kind becomes a left-to-right chain.
func Mermaid(d *catalog.Diagram) string {
	if d.Kind == catalog.KindContextMap {
		return ContextMapMermaid(d)
	}
	return ChainMermaid(d)
}

// ContextMapMermaid generates a mermaid graph TD with one subgraph per layer
// tag, in order of first appearance, and edges from each layer to the next.
func ContextMapMermaid(d *catalog.Diagram) string {
	var (
		b      strings.Builder
		layers []string
		nodes  = make(map[string][]catalog.Element)
	)
	for _, e := range d.Elements {
		tag := e.Tag
		if tag == "" {
			tag = "Other"
		}
		if _, ok := nodes[tag]; !ok {
			layers = append(layers, tag)
		}
		nodes[tag] = append(nodes[tag], e)
	}

	b.WriteString("graph TD\n")
	for _, layer := range layers {
		b.WriteString(fmt.Sprintf("    subgraph %s[\"%s\"]\n", sanitizeID("layer "+layer), escapeMermaid(layer)))
		for _, e := range nodes[layer] {
			id := sanitizeID(d.ID + " " + e.ID)
			if e.Sublabel != "" {
				b.WriteString(fmt.Sprintf("        %s[\"%s<br/>%s\"]\n", id, escapeMermaid(e.Label), escapeMermaid(e.Sublabel)))
			} else {
				b.WriteString(fmt.Sprintf("        %s[\"%s\"]\n", id, escapeMermaid(e.Label)))
			}
		}
		b.WriteString("    end\n")
	}
	for i := 1; i < len(layers); i++ {
		b.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeID("layer "+layers[i-1]), sanitizeID("layer "+layers[i])))
	}
	return b.String()
}

// ChainMermaid generates a mermaid graph LR linking elements in slice order.
func ChainMermaid(d *catalog.Diagram) string {
	var b strings.Builder
	b.WriteString("graph LR\n")
	for _, e := range d.Elements {
		id := sanitizeID(d.ID + " " + e.ID)
		if e.Sublabel != "" {
			b.WriteString(fmt.Sprintf("    %s[\"%s<br/>%s\"]\n", id, escapeMermaid(e.Label), escapeMermaid(e.Sublabel)))
		} else {
			b.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escapeMermaid(e.Label)))
		}
	}
	for i := 1; i < len(d.Elements); i++ {
		b.WriteString(fmt.Sprintf("    %s --> %s\n",
			sanitizeID(d.ID+" "+d.Elements[i-1].ID), sanitizeID(d.ID+" "+d.Elements[i].ID)))
	}
	return b.String()
}

// sanitizeID converts a string into a safe mermaid node ID.
func sanitizeID(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		".", "_",
		"-", "_",
		" ", "_",
		"(", "_",
		")", "_",
		"[", "_",
		"]", "_",
		"{", "_",
		"}", "_",
		":", "_",
		"·", "_",
		"&", "_",
		"+", "_",
	)
	return replacer.Replace(s)
}

// escapeMermaid escapes characters that have special meaning in mermaid labels.
func escapeMermaid(s string) string {
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "(", "#lpar;")
	s = strings.ReplaceAll(s, ")", "#rpar;")
	s = strings.ReplaceAll(s, "[", "#lsqb;")
	s = strings.ReplaceAll(s, "]", "#rsqb;")
	s = strings.ReplaceAll(s, "{", "#lbrace;")
	s = strings.ReplaceAll(s, "}", "#rbrace;")
	s = strings.ReplaceAll(s, "<", "#lt;")
	s = strings.ReplaceAll(s, ">", "#gt;")
	return s
}
