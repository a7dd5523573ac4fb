package analysis

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestMeanBoardCompleteness_Extremes verifies empty and full boards are always complete.
func TestMeanBoardCompleteness_Extremes(t *testing.T) {
	t.Parallel()

	for _, p := range []float64{0, 1} {
		c, err := MeanBoardCompleteness(rand.NewPCG(1, 1), 8, p, 5)
		require.NoError(t, err)
		assert.Equal(t, 1.0, c, "p=%v", p)
	}
}

// TestMeanBoardCompleteness_Range verifies the mean is a fraction.
func TestMeanBoardCompleteness_Range(t *testing.T) {
	t.Parallel()

	c, err := MeanBoardCompleteness(rand.NewPCG(9, 9), 10, 0.5, 10)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c, 0.0)
	assert.LessOrEqual(t, c, 1.0)
}

// TestMeanBoardCompleteness_InvalidParams verifies bad inputs are rejected before any work.
func TestMeanBoardCompleteness_InvalidParams(t *testing.T) {
	t.Parallel()

	src := rand.NewPCG(1, 1)
	_, err := MeanBoardCompleteness(src, 0, 0.5, 10)
	assert.Error(t, err)
	_, err = MeanBoardCompleteness(src, 5, 1.5, 10)
	assert.Error(t, err)
	_, err = MeanBoardCompleteness(src, 5, 0.5, 0)
	assert.Error(t, err)
}

// TestMeanLineCompleteness verifies full reveal gives full completeness and q is range-checked.
func TestMeanLineCompleteness(t *testing.T) {
	t.Parallel()

	c, err := MeanLineCompleteness(rand.NewPCG(2, 2), 12, 0.4, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c)

	c, err = MeanLineCompleteness(rand.NewPCG(2, 2), 12, 0.4, 0.2, 20)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c, 0.0)
	assert.LessOrEqual(t, c, 1.0)

	_, err = MeanLineCompleteness(rand.NewPCG(2, 2), 12, 0.4, -0.1, 20)
	assert.Error(t, err)
}

// TestProbabilities verifies the p grid includes both ends.
func TestProbabilities(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Probabilities(4))
}

// TestSweep_OrderAndShape verifies one row per (size, p), ordered by size then p.
func TestSweep_OrderAndShape(t *testing.T) {
	t.Parallel()

	cfg := SweepConfig{Sizes: []int{4, 6}, NumTest: 3, NumPTests: 4, Seed: 42, Workers: 3}
	rows, err := Sweep(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	ps := Probabilities(cfg.NumPTests)
	for i, row := range rows {
		assert.Equal(t, float64(cfg.Sizes[i/len(ps)]), row.Size)
		assert.Equal(t, ps[i%len(ps)], row.P)
		assert.GreaterOrEqual(t, row.C, 0.0)
		assert.LessOrEqual(t, row.C, 1.0)
	}
	assert.Equal(t, 1.0, rows[0].C)
	assert.Equal(t, 1.0, rows[len(rows)-1].C)
}

// TestSweep_Deterministic verifies the worker count does not change the result for a fixed seed.
func TestSweep_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := SweepConfig{Sizes: []int{5}, NumTest: 4, NumPTests: 6, Seed: 7, Workers: 1}
	serial, err := Sweep(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 4
	parallel, err := Sweep(context.Background(), cfg)
	require.NoError(t, err)

	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Fatalf("sweep depends on scheduling (-serial +parallel):\n%s", diff)
	}
}

// TestSweep_Cancelled verifies a cancelled context stops the sweep with its error.
func TestSweep_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := Sweep(ctx, SweepConfig{Sizes: []int{5}, NumTest: 2, NumPTests: 10})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rows)
}

// TestSweep_InvalidConfig verifies empty sizes and bad step counts fail.
func TestSweep_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := Sweep(context.Background(), SweepConfig{NumTest: 1, NumPTests: 1})
	assert.Error(t, err)
	_, err = Sweep(context.Background(), SweepConfig{Sizes: []int{3}, NumTest: 1})
	assert.Error(t, err)
	_, err = Sweep(context.Background(), SweepConfig{Sizes: []int{-3}, NumTest: 1, NumPTests: 2})
	assert.Error(t, err)
}

// TestNewSweepConfig verifies the generator defaults.
func TestNewSweepConfig(t *testing.T) {
	t.Parallel()

	cfg := NewSweepConfig()
	assert.Equal(t, []int{15}, cfg.Sizes)
	assert.Equal(t, 50, cfg.NumTest)
	assert.Equal(t, 200, cfg.NumPTests)
}
