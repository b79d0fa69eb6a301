package render

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gramod/pkg/errors"
	"github.com/matzehuels/gramod/pkg/tower"
)

// Output formats understood by [Render].
const (
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// ValidateFormat checks that format is one of the supported output formats.
func ValidateFormat(format string) error {
	switch format {
	case FormatSVG, FormatDOT:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want svg or dot)", format)
}

// FormatFromPath derives the output format from a file extension.
func FormatFromPath(path string) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// Walks returns the orbit walked at every level of the reduction of base
// modulo modulus. It is empty when modulus is a power of base.
func Walks(base, modulus int) ([]tower.Orbit, error) {
	if err := errors.ValidateBase(base); err != nil {
		return nil, err
	}
	if err := errors.ValidateModulus(modulus); err != nil {
		return nil, err
	}
	if tower.IsPower(base, modulus) {
		return nil, nil
	}

	var walks []tower.Orbit
	seq := tower.Identity(modulus)
	for len(seq) > 1 {
		orbit := seq.Walk(base)
		walks = append(walks, orbit)
		seq = orbit.Align()
	}
	return walks, nil
}

// ToDOT converts the reduction of base modulo modulus to Graphviz DOT.
// The resulting string can be rendered with [RenderSVG].
func ToDOT(base, modulus int) (string, error) {
	walks, err := Walks(base, modulus)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  nodesep=0.3;\n")

	if len(walks) == 0 {
		fmt.Fprintf(&buf, "\n  %q [label=\"0\"];\n", "exact")
		fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("%d is a power of %d", modulus, base))
	}

	size := modulus
	for level, o := range walks {
		fmt.Fprintf(&buf, "\n  subgraph cluster_%d {\n", level)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("level %d: mod %d, cycle length %d", level+1, size, o.Period()))
		buf.WriteString("    style=\"rounded,dashed\";\n")
		for i, v := range o.Values {
			attrs := []string{fmt.Sprintf("label=%q", strconv.Itoa(v))}
			if i < o.Lead {
				attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
			}
			fmt.Fprintf(&buf, "    %q [%s];\n", nodeID(level, i), strings.Join(attrs, ", "))
		}
		for i := 1; i < len(o.Values); i++ {
			fmt.Fprintf(&buf, "    %q -> %q;\n", nodeID(level, i-1), nodeID(level, i))
		}
		fmt.Fprintf(&buf, "    %q -> %q [constraint=false];\n", nodeID(level, len(o.Values)-1), nodeID(level, o.Lead))
		buf.WriteString("  }\n")
		size = o.Period()
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func nodeID(level, i int) string {
	return "l" + strconv.Itoa(level) + "_" + strconv.Itoa(i)
}

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

// Render produces the orbit diagram in the given format.
func Render(ctx context.Context, base, modulus int, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	dot, err := ToDOT(base, modulus)
	if err != nil {
		return nil, err
	}
	if format == FormatDOT {
		return []byte(dot), nil
	}
	return RenderSVG(ctx, dot)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based size attributes so the SVG
// scales with its container.
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
