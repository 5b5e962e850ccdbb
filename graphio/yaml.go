package graphio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/planar"
)

// GraphDoc is the YAML form of a graph. Vertices lists every vertex,
// including isolated ones; edge endpoints missing from it are added.
//
//	directed: false
//	vertices: [a, b, c]
//	edges:
//	  - {from: a, to: b}
//	  - {from: b, to: c, weight: 4}
type GraphDoc struct {
	Directed bool      `yaml:"directed,omitempty"`
	Vertices []string  `yaml:"vertices,omitempty,flow"`
	Edges    []EdgeDoc `yaml:"edges"`
}

// EdgeDoc is one edge of a GraphDoc. A zero weight means unweighted.
type EdgeDoc struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight,omitempty"`
}

// EmbeddingDoc is the YAML result document of the command line tool.
// Rotation lists each vertex's neighbours in clockwise order.
type EmbeddingDoc struct {
	Planar         bool                `yaml:"planar"`
	Rotation       map[string][]string `yaml:"rotation,omitempty"`
	Faces          [][]string          `yaml:"faces,omitempty"`
	Counterexample []planar.Edge       `yaml:"counterexample,omitempty"`
}

// NewGraphDoc captures g, preserving vertex and edge order.
func NewGraphDoc(g *core.Graph) GraphDoc {
	doc := GraphDoc{Directed: g.Directed(), Vertices: g.Vertices()}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Graph builds a core.Graph from doc. Loops and parallel edges are kept; the
// graph is weighted when any edge carries a weight.
func (doc GraphDoc) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithLoops(), core.WithMultiEdges()}
	if doc.Directed {
		opts = append(opts, core.WithDirected(true))
	}
	for _, e := range doc.Edges {
		if e.Weight != 0 {
			opts = append(opts, core.WithWeighted())
			break
		}
	}
	g := core.NewGraph(opts...)

	for _, v := range doc.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("GraphDoc.Graph: vertex %q: %v: %w", v, err, ErrBadDocument)
		}
	}
	for i, e := range doc.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("GraphDoc.Graph: edge %d (%q,%q): %v: %w", i, e.From, e.To, err, ErrBadDocument)
		}
	}

	return g, nil
}

// ReadYAML decodes a GraphDoc and builds its graph. Unknown keys are rejected.
func ReadYAML(r io.Reader) (*core.Graph, error) {
	var doc GraphDoc
	if err := decodeStrict(r, &doc); err != nil {
		return nil, fmt.Errorf("ReadYAML: %w", err)
	}

	return doc.Graph()
}

// WriteYAML encodes g as a GraphDoc.
func WriteYAML(w io.Writer, g *core.Graph) error {
	return encode(w, NewGraphDoc(g))
}

// NewEmbeddingDoc describes a planar embedding; faces are listed only when
// withFaces is set.
func NewEmbeddingDoc(emb *planar.Embedding, withFaces bool) (EmbeddingDoc, error) {
	doc := EmbeddingDoc{Planar: true, Rotation: emb.Data()}
	if withFaces {
		faces, err := emb.Faces()
		if err != nil {
			return EmbeddingDoc{}, fmt.Errorf("NewEmbeddingDoc: %w", err)
		}
		doc.Faces = faces
	}

	return doc, nil
}

// Embedding rebuilds the rotation system of doc and verifies it.
//
// Errors: ErrBadDocument for a non-planar document, planar.ErrBadEmbedding
// when the rotation system fails CheckStructure.
func (doc EmbeddingDoc) Embedding() (*planar.Embedding, error) {
	if !doc.Planar {
		return nil, fmt.Errorf("EmbeddingDoc.Embedding: document is not planar: %w", ErrBadDocument)
	}
	emb, err := planar.EmbeddingFromData(doc.Rotation)
	if err != nil {
		return nil, fmt.Errorf("EmbeddingDoc.Embedding: %w", err)
	}
	if err = emb.CheckStructure(); err != nil {
		return nil, fmt.Errorf("EmbeddingDoc.Embedding: %w", err)
	}

	return emb, nil
}

// ReadEmbeddingDoc decodes an EmbeddingDoc.
func ReadEmbeddingDoc(r io.Reader) (EmbeddingDoc, error) {
	var doc EmbeddingDoc
	if err := decodeStrict(r, &doc); err != nil {
		return EmbeddingDoc{}, fmt.Errorf("ReadEmbeddingDoc: %w", err)
	}

	return doc, nil
}

// WriteEmbeddingDoc encodes doc.
func WriteEmbeddingDoc(w io.Writer, doc EmbeddingDoc) error {
	return encode(w, doc)
}

func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty document: %w", ErrBadDocument)
		}
		return fmt.Errorf("%v: %w", err, ErrBadDocument)
	}

	return nil
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return enc.Close()
}
