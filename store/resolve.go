package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/planarity/planar"
)

// Resolver answers planarity queries through a Store.
type Resolver struct {
	store  Store
	logger *log.Logger
}

// NewResolver wraps s; a nil logger discards output.
func NewResolver(s Store, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Resolver{store: s, logger: logger}
}

// Resolve returns the record for the input graph and whether it was served
// entirely from the cache. On a miss it runs planar.TestAndEmbed; with
// witness set, a non-planar record is completed with a counterexample. New or
// completed records are written back.
//
// Input errors from the planar package are returned unchanged and nothing is
// cached for them.
func (r *Resolver) Resolve(ctx context.Context, vertices []string, edges []planar.Edge, witness bool) (Record, bool, error) {
	key := Digest(vertices, edges)
	rec, hit, err := r.store.Get(ctx, key)
	if err != nil {
		return Record{}, false, fmt.Errorf("Resolve: %w", err)
	}
	if hit && (rec.Planar || !witness || rec.Counterexample != nil) {
		r.logger.Debug("cache hit", "key", key[:12], "planar", rec.Planar)
		return rec, true, nil
	}

	if !hit {
		r.logger.Debug("cache miss", "key", key[:12])
		emb, err := planar.TestAndEmbed(vertices, edges, planar.WithLogger(r.logger))
		switch {
		case err == nil:
			rec = Record{Planar: true, Rotation: emb.Data()}
		case errors.Is(err, planar.ErrNotPlanar):
			rec = Record{Planar: false}
		default:
			return Record{}, false, err
		}
	}

	if !rec.Planar && witness {
		ce, err := planar.ExtractCounterexample(ctx, vertices, edges, planar.WithLogger(r.logger))
		if err != nil {
			return Record{}, false, err
		}
		rec.Counterexample = ce
	}

	if err = r.store.Put(ctx, key, rec); err != nil {
		return Record{}, false, fmt.Errorf("Resolve: %w", err)
	}

	return rec, false, nil
}
