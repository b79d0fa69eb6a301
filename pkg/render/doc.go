// Package render draws the orbits walked while reducing a tower.
//
// # Overview
//
// Every reduction level walks n -> n*base over the current sequence until a
// value repeats. [ToDOT] turns those walks into a Graphviz digraph with one
// cluster per level: the visited values form a chain, a back edge closes the
// cycle, and values in the transient part are drawn dashed.
//
// # Usage
//
//	dot, err := render.ToDOT(3, 127)
//	if err != nil {
//	    return err
//	}
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. DOT output needs no external tools.
package render
