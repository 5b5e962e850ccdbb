package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/planarity/core"
)

// defaultWeight is assumed for arcs written without a weight.
const defaultWeight int64 = 1

// maxLine bounds a single input line; wide adjacency matrices need more than
// bufio's 64 KiB default.
const maxLine = 16 << 20

// Arc is one directed entry of a text table, 1-based.
type Arc struct {
	From, To int
	Weight   int64
}

// Table is the format-neutral content of a text graph file.
type Table struct {
	N    int
	Arcs []Arc
}

type arcKey [2]int

// MaxVertices bounds the vertex count a text header may declare.
const MaxVertices = 1 << 22

// ParseTable reads a text graph in format f.
//
// Errors: ErrBadHeader, ErrBadLine, ErrVertexRange, ErrUnknownFormat.
func ParseTable(r io.Reader, f Format) (*Table, error) {
	lines, first, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("ParseTable: empty input: %w", ErrBadHeader)
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("ParseTable: line %d: %q: %w", first, lines[0], ErrBadHeader)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("ParseTable: line %d: %d vertices, limit %d: %w", first, n, MaxVertices, ErrBadHeader)
	}

	t := &Table{N: n}
	body := lines[1:]
	switch f {
	case FormatEdges:
		err = t.parseEdges(body, first+1)
	case FormatAdjacencyList:
		err = t.parseAdjacencyList(body, first+1)
	case FormatAdjacencyMatrix:
		err = t.parseAdjacencyMatrix(body, first+1)
	default:
		err = fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("ParseTable: %w", err)
	}

	return t, nil
}

// readLines returns the input without leading and trailing blank lines, plus
// the 1-based number of the first returned line.
func readLines(r io.Reader) ([]string, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("readLines: %w", err)
	}

	lo, hi := 0, len(lines)
	for lo < hi && strings.TrimSpace(lines[lo]) == "" {
		lo++
	}
	for hi > lo && strings.TrimSpace(lines[hi-1]) == "" {
		hi--
	}

	return lines[lo:hi], lo + 1, nil
}

func (t *Table) vertex(field string, lineNo int) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("line %d: vertex %q: %w", lineNo, field, ErrBadLine)
	}
	if v < 1 || v > t.N {
		return 0, fmt.Errorf("line %d: vertex %d not in 1..%d: %w", lineNo, v, t.N, ErrVertexRange)
	}

	return v, nil
}

func weight(field string, lineNo int) (int64, error) {
	w, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: weight %q: %w", lineNo, field, ErrBadLine)
	}

	return w, nil
}

func (t *Table) parseEdges(lines []string, lineNo int) error {
	for i, line := range lines {
		no := lineNo + i
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 && len(fields) != 3 {
			return fmt.Errorf("line %d: %q: want \"u v\" or \"u v w\": %w", no, line, ErrBadLine)
		}

		u, err := t.vertex(fields[0], no)
		if err != nil {
			return err
		}
		v, err := t.vertex(fields[1], no)
		if err != nil {
			return err
		}
		w := defaultWeight
		if len(fields) == 3 {
			if w, err = weight(fields[2], no); err != nil {
				return err
			}
		}
		t.Arcs = append(t.Arcs, Arc{From: u, To: v, Weight: w})
	}

	return nil
}

func (t *Table) parseAdjacencyList(lines []string, lineNo int) error {
	for i, line := range lines {
		no := lineNo + i
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if i >= t.N {
			return fmt.Errorf("line %d: adjacency for vertex %d of %d: %w", no, i+1, t.N, ErrVertexRange)
		}

		for _, field := range fields {
			vs, ws, hasWeight := strings.Cut(field, ":")
			v, err := t.vertex(vs, no)
			if err != nil {
				return err
			}
			w := defaultWeight
			if hasWeight {
				if w, err = weight(ws, no); err != nil {
					return err
				}
			}
			t.Arcs = append(t.Arcs, Arc{From: i + 1, To: v, Weight: w})
		}
	}

	return nil
}

func (t *Table) parseAdjacencyMatrix(lines []string, lineNo int) error {
	row := 0
	for i, line := range lines {
		no := lineNo + i
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if row >= t.N {
			return fmt.Errorf("line %d: more than %d rows: %w", no, t.N, ErrBadLine)
		}
		if len(fields) != t.N {
			return fmt.Errorf("line %d: %d columns, want %d: %w", no, len(fields), t.N, ErrBadLine)
		}

		for col, field := range fields {
			w, err := weight(field, no)
			if err != nil {
				return err
			}
			if w != 0 {
				t.Arcs = append(t.Arcs, Arc{From: row + 1, To: col + 1, Weight: w})
			}
		}
		row++
	}
	if row != t.N {
		return fmt.Errorf("%d rows, want %d: %w", row, t.N, ErrBadLine)
	}

	return nil
}

// weights collapses repeated arcs (last weight wins) and returns the
// distinct arcs in first-seen order.
func (t *Table) weights() (map[arcKey]int64, []arcKey) {
	m := make(map[arcKey]int64, len(t.Arcs))
	order := make([]arcKey, 0, len(t.Arcs))
	for _, a := range t.Arcs {
		k := arcKey{a.From, a.To}
		if _, ok := m[k]; !ok {
			order = append(order, k)
		}
		m[k] = a.Weight
	}

	return m, order
}

// IsDirected reports whether some arc u→v lacks a reverse arc v→u of equal
// weight.
func (t *Table) IsDirected() bool {
	m, order := t.weights()
	for _, k := range order {
		if w, ok := m[arcKey{k[1], k[0]}]; !ok || w != m[k] {
			return true
		}
	}

	return false
}

// Graph converts t into a core.Graph with vertices "1".."n". The graph is
// directed when IsDirected says so, weighted when some weight differs from 1,
// and allows loops when a loop is present. An undirected table contributes one
// edge per symmetric pair.
func (t *Table) Graph() (*core.Graph, error) {
	m, order := t.weights()
	directed := t.IsDirected()

	weighted, loops := false, false
	for _, k := range order {
		weighted = weighted || m[k] != defaultWeight
		loops = loops || k[0] == k[1]
	}

	var opts []core.GraphOption
	if directed {
		opts = append(opts, core.WithDirected(true))
	}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	if loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for i := 1; i <= t.N; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("Table.Graph: AddVertex(%d): %w", i, err)
		}
	}

	seen := make(map[arcKey]bool, len(order))
	for _, k := range order {
		if !directed && seen[arcKey{k[1], k[0]}] {
			continue
		}
		seen[k] = true

		var w int64
		if weighted {
			w = m[k]
		}
		if _, err := g.AddEdge(strconv.Itoa(k[0]), strconv.Itoa(k[1]), w); err != nil {
			return nil, fmt.Errorf("Table.Graph: AddEdge(%d→%d): %w", k[0], k[1], err)
		}
	}

	return g, nil
}

// TableFromGraph numbers the vertices of g 1..n in insertion order and lists
// every edge as arcs, both directions for undirected edges. The returned slice
// maps a 1-based number back to the vertex ID at index number-1.
func TableFromGraph(g *core.Graph) (*Table, []string) {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i + 1
	}

	t := &Table{N: len(ids)}
	for _, e := range g.Edges() {
		w := defaultWeight
		if g.Weighted() {
			w = e.Weight
		}
		u, v := index[e.From], index[e.To]
		t.Arcs = append(t.Arcs, Arc{From: u, To: v, Weight: w})
		if !e.Directed && u != v {
			t.Arcs = append(t.Arcs, Arc{From: v, To: u, Weight: w})
		}
	}

	return t, ids
}

// Encode writes t in format f. Weights are written only when one of them
// differs from 1.
func (t *Table) Encode(w io.Writer, f Format) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, t.N)

	m, order := t.weights()
	withWeights := false
	for _, k := range order {
		withWeights = withWeights || m[k] != defaultWeight
	}

	switch f {
	case FormatEdges:
		for _, k := range order {
			if withWeights {
				fmt.Fprintf(bw, "%d %d %d\n", k[0], k[1], m[k])
			} else {
				fmt.Fprintf(bw, "%d %d\n", k[0], k[1])
			}
		}
	case FormatAdjacencyList:
		rows := make([][]string, t.N)
		for _, k := range order {
			tok := strconv.Itoa(k[1])
			if withWeights {
				tok += ":" + strconv.FormatInt(m[k], 10)
			}
			rows[k[0]-1] = append(rows[k[0]-1], tok)
		}
		for _, row := range rows {
			fmt.Fprintln(bw, strings.Join(row, " "))
		}
	case FormatAdjacencyMatrix:
		row := make([]string, t.N)
		for i := 1; i <= t.N; i++ {
			for j := 1; j <= t.N; j++ {
				row[j-1] = strconv.FormatInt(m[arcKey{i, j}], 10)
			}
			fmt.Fprintln(bw, strings.Join(row, " "))
		}
	default:
		return fmt.Errorf("Table.Encode: %q: %w", f, ErrUnknownFormat)
	}

	return bw.Flush()
}
