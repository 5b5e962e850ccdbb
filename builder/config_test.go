package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng, "deterministic unless an RNG is supplied")
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	assert.Equal(t, "L", cfg.leftPrefix)
	assert.Equal(t, "R", cfg.rightPrefix)
}

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "z", newBuilderConfig(WithAlphanumericIDs()).idFn(35))
	assert.Equal(t, "ff", newBuilderConfig(WithHexIDs()).idFn(255))
	assert.Equal(t, "v3", newBuilderConfig(WithSymbNumb("v")).idFn(3))
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3), "later options win")
	assert.Panics(t, func() { WithIDScheme(nil) })
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "same seed, same stream")

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	assert.Panics(t, func() { WithRand(nil) })
}

func TestPartitionPrefixOption(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPartitionPrefix("U", "W"))
	assert.Equal(t, "U", cfg.leftPrefix)
	assert.Equal(t, "W", cfg.rightPrefix)

	cfg = newBuilderConfig(WithPartitionPrefix("", ""))
	assert.Equal(t, "L", cfg.leftPrefix)
	assert.Equal(t, "R", cfg.rightPrefix)
}
