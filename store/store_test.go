package store_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/planar"
	"github.com/katalvlaran/planarity/store"
)

func openMem(t *testing.T) *store.BadgerStore {
	t.Helper()
	s, err := store.OpenBadger(store.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func k5() ([]string, []planar.Edge) {
	vs := []string{"0", "1", "2", "3", "4"}
	var es []planar.Edge
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			es = append(es, planar.Edge{U: vs[i], V: vs[j]})
		}
	}
	return vs, es
}

func TestDigest_OrderIndependent(t *testing.T) {
	a := store.Digest([]string{"a", "b", "c"}, []planar.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}})
	b := store.Digest([]string{"c", "a", "b"}, []planar.Edge{{U: "c", V: "b"}, {U: "b", V: "a"}})
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	c := store.Digest([]string{"a", "b", "c"}, []planar.Edge{{U: "a", V: "b"}})
	assert.NotEqual(t, a, c)

	// Separators keep "ab"+"c" apart from "a"+"bc".
	assert.NotEqual(t, store.Digest([]string{"ab", "c"}, nil), store.Digest([]string{"a", "bc"}, nil))
}

func TestBadgerStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	rec := store.Record{Planar: true, Rotation: map[string][]string{"a": {"b"}, "b": {"a"}}}
	require.NoError(t, s.Put(ctx, "k1", rec))
	require.NoError(t, s.Put(ctx, "k2", store.Record{Counterexample: []planar.Edge{{U: "x", V: "y"}}}))

	got, ok, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec, got)

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, s.Delete(ctx, "k1"))
	require.NoError(t, s.Delete(ctx, "k1"), "deleting twice is fine")
	_, ok, err = s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Clear(ctx))
	n, err = s.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBadgerStore_Closed(t *testing.T) {
	s, err := store.OpenBadger(store.Config{InMemory: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Close(), store.ErrClosed)
	_, _, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, s.Put(context.Background(), "k", store.Record{}), store.ErrClosed)
}

func TestBadgerStore_Persistent(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := store.OpenBadger(store.Config{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "k", store.Record{Planar: true}))
	require.NoError(t, s.Close())

	s, err = store.OpenBadger(store.Config{Dir: dir})
	require.NoError(t, err)
	defer s.Close()
	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Planar)

	_, err = store.OpenBadger(store.Config{})
	assert.Error(t, err, "a persistent store needs a directory")
}

func TestResolver(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	r := store.NewResolver(openMem(t), logger)

	vs, es := k5()
	rec, hit, err := r.Resolve(ctx, vs, es, false)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.False(t, rec.Planar)
	assert.Nil(t, rec.Counterexample)

	rec, hit, err = r.Resolve(ctx, vs, es, false)
	require.NoError(t, err)
	assert.True(t, hit)

	rec, hit, err = r.Resolve(ctx, vs, es, true)
	require.NoError(t, err)
	assert.False(t, hit, "the witness had to be computed")
	assert.Equal(t, es, rec.Counterexample)

	_, hit, err = r.Resolve(ctx, vs, es, true)
	require.NoError(t, err)
	assert.True(t, hit)

	square := []planar.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}, {U: "c", V: "d"}, {U: "d", V: "a"}}
	rec, _, err = r.Resolve(ctx, []string{"a", "b", "c", "d"}, square, true)
	require.NoError(t, err)
	assert.True(t, rec.Planar)
	assert.Len(t, rec.Rotation, 4)

	emb, err := planar.EmbeddingFromData(rec.Rotation)
	require.NoError(t, err)
	assert.NoError(t, emb.CheckStructure())

	assert.Contains(t, logs.String(), "cache hit")
	assert.Contains(t, logs.String(), "cache miss")
}

func TestResolver_InputErrorsAreNotCached(t *testing.T) {
	s := openMem(t)
	r := store.NewResolver(s, nil)

	_, _, err := r.Resolve(context.Background(), []string{"a"}, []planar.Edge{{U: "a", V: "a"}}, false)
	assert.ErrorIs(t, err, planar.ErrSelfLoop)

	n, err := s.Len(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNullStore(t *testing.T) {
	r := store.NewResolver(store.NullStore{}, nil)
	vs, es := k5()
	for i := 0; i < 2; i++ {
		_, hit, err := r.Resolve(context.Background(), vs, es, false)
		require.NoError(t, err)
		assert.False(t, hit)
	}
}
