package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-graphviz"
)

var (
	// ErrUnknownLayout indicates a Graphviz layout engine name that is not supported.
	ErrUnknownLayout = errors.New("render: unknown layout")
	// ErrUnknownFormat indicates an output format other than svg, png or dot.
	ErrUnknownFormat = errors.New("render: unknown format")
)

// DefaultLayout suits undirected planar drawings better than the layered "dot".
const DefaultLayout = "neato"

var layouts = map[string]graphviz.Layout{
	"dot":   graphviz.DOT,
	"neato": graphviz.NEATO,
	"fdp":   graphviz.FDP,
	"sfdp":  graphviz.SFDP,
	"circo": graphviz.CIRCO,
	"twopi": graphviz.TWOPI,
}

// Layouts lists the supported layout engines in lexical order.
func Layouts() []string {
	return slices.Sorted(maps.Keys(layouts))
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{"dot", "png", "svg"}
}

// Render lays out dot with layout ("" selects DefaultLayout) and encodes it
// as "svg" or "png". Format "dot" returns the input unchanged.
func Render(ctx context.Context, dot, format, layout string) ([]byte, error) {
	if layout == "" {
		layout = DefaultLayout
	}
	engine, ok := layouts[layout]
	if !ok {
		return nil, fmt.Errorf("Render: %q: %w", layout, ErrUnknownLayout)
	}

	var out graphviz.Format
	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		out = graphviz.SVG
	case "png":
		out = graphviz.PNG
	default:
		return nil, fmt.Errorf("Render: %q: %w", format, ErrUnknownFormat)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(engine)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, out, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderSVG renders dot to SVG with the default layout.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, "svg", DefaultLayout)
}
