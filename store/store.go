package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"slices"
	"strings"

	"github.com/katalvlaran/planarity/planar"
)

// ErrClosed indicates use of a store after Close.
var ErrClosed = errors.New("store: closed")

// Record is one cached result.
type Record struct {
	Planar         bool                `yaml:"planar"`
	Rotation       map[string][]string `yaml:"rotation,omitempty"`
	Counterexample []planar.Edge       `yaml:"counterexample,omitempty"`
}

// Store is a key-value cache of records. Implementations are safe for
// concurrent use.
type Store interface {
	// Get returns the record under key and whether it exists.
	Get(ctx context.Context, key string) (Record, bool, error)
	// Put stores rec under key, replacing any previous record.
	Put(ctx context.Context, key string, rec Record) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every record.
	Clear(ctx context.Context) error
	Close() error
}

// Digest returns a hex SHA-256 over the sorted vertex IDs and the sorted,
// endpoint-normalised edge list.
func Digest(vertices []string, edges []planar.Edge) string {
	vs := slices.Clone(vertices)
	slices.Sort(vs)

	es := make([][2]string, len(edges))
	for i, e := range edges {
		if e.V < e.U {
			e.U, e.V = e.V, e.U
		}
		es[i] = [2]string{e.U, e.V}
	}
	slices.SortFunc(es, func(a, b [2]string) int {
		if c := strings.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return strings.Compare(a[1], b[1])
	})

	h := sha256.New()
	for _, v := range vs {
		h.Write([]byte(v))
		h.Write([]byte{0})
	}
	h.Write([]byte{1})
	for _, e := range es {
		h.Write([]byte(e[0]))
		h.Write([]byte{0})
		h.Write([]byte(e[1]))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
