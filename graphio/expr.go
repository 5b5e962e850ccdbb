package graphio

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/planarity/core"
)

// An expression is a list of runs separated by "," or ";". A run is a walk
// "a-b-c" adding the edges a-b and b-c; a run of one vertex adds an isolated
// vertex. Example: "1-2-3-1, 3-4; x".
type exprGraph struct {
	Runs []*exprRun `parser:"( @@ ( ( \",\" | \";\" ) @@ )* )?"`
}

type exprRun struct {
	Head string   `parser:"@Ident"`
	Tail []string `parser:"( \"-\" @Ident )*"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z0-9_.:]+`},
	{Name: "Punct", Pattern: `[-,;]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var exprParser = participle.MustBuild[exprGraph](
	participle.Lexer(exprLexer),
)

// ParseExpr builds an undirected graph from an inline expression. Repeated
// edges and loops are kept, so the result may need core.SimpleUndirectedView
// before a planarity test.
//
// Errors: ErrBadExpr.
func ParseExpr(expr string) (*core.Graph, error) {
	ast, err := exprParser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("ParseExpr: %v: %w", err, ErrBadExpr)
	}

	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, run := range ast.Runs {
		if err = g.AddVertex(run.Head); err != nil {
			return nil, fmt.Errorf("ParseExpr: %w", err)
		}
		prev := run.Head
		for _, next := range run.Tail {
			if _, err = g.AddEdge(prev, next, 0); err != nil {
				return nil, fmt.Errorf("ParseExpr: edge %s-%s: %w", prev, next, err)
			}
			prev = next
		}
	}

	return g, nil
}
