package report

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/bundlecheck/pkg/bundle"
	"github.com/matzehuels/bundlecheck/pkg/errors"
)

// ToDOT converts a check result to Graphviz DOT. Each bundled package gets
// an edge from the file that pulled it in. Missing packages are filled red;
// unused ones are drawn dashed with no incoming edge.
//
// The DOT string can be rendered with [RenderSVG] or external Graphviz tools.
func ToDOT(res *bundle.Result) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var sources []string
	for _, e := range res.Bundled {
		if !slices.Contains(sources, e.Reason) {
			sources = append(sources, e.Reason)
		}
	}
	for _, s := range sources {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=note, fillcolor=lightgrey];\n", fileID(s), s)
	}

	buf.WriteString("\n")
	for _, e := range res.Bundled {
		attrs := fmt.Sprintf("label=%q", e.Name)
		if slices.Contains(res.Missing, e.Name) {
			attrs += ", fillcolor=\"#f4b6b0\""
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", pkgID(e.Name), attrs)
	}
	for _, name := range res.Unused {
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fontcolor=grey40];\n", pkgID(name), name)
	}

	buf.WriteString("\n")
	for _, e := range res.Bundled {
		fmt.Fprintf(&buf, "  %q -> %q;\n", fileID(e.Reason), pkgID(e.Name))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Files and packages live in separate ID spaces so a file named like a
// package cannot merge with it.
func fileID(path string) string { return "file:" + path }
func pkgID(name string) string  { return "pkg:" + name }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg tag, which carries pt units
// and a translated viewBox, with a plain zero-origin one.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// Graph formats accepted by [Graph], keyed by file extension.
const (
	GraphDOT = ".dot"
	GraphSVG = ".svg"
)

// GraphFormats lists the supported graph file extensions.
var GraphFormats = []string{GraphDOT, GraphSVG}

// Graph renders res as DOT or SVG depending on ext.
func Graph(ctx context.Context, res *bundle.Result, ext string) ([]byte, error) {
	dot := ToDOT(res)
	switch ext {
	case GraphDOT:
		return []byte(dot), nil
	case GraphSVG:
		return RenderSVG(ctx, dot)
	default:
		return nil, errors.ValidateChoice("graph format", ext, GraphFormats...)
	}
}
