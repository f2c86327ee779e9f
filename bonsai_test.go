package bonsai_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/pbanos/bonsai"
	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableRows returns 4 failing rows with x0 <= 4 and 6 passing rows with
// x0 >= 6.
func separableRows() *dataset.Dataset {
	var rows []dataset.Row
	for i := 1; i <= 4; i++ {
		rows = append(rows, dataset.NewRow(float64(i), float64(10*i), false))
	}
	for i := 6; i <= 11; i++ {
		rows = append(rows, dataset.NewRow(float64(i), float64(10*i), true))
	}
	return dataset.New(rows)
}

func noisyRows(r *rand.Rand, n int) *dataset.Dataset {
	rows := make([]dataset.Row, n)
	for i := range rows {
		x0, x1 := r.Float64()*40, r.Float64()*100
		passed := x0*2+x1 > 90
		if r.Intn(10) == 0 {
			passed = !passed
		}
		rows[i] = dataset.NewRow(x0, x1, passed)
	}
	return dataset.New(rows)
}

// TestGrow_SeparableData verifies a single pure split on the first feature
// that separates the data.
func TestGrow_SeparableData(t *testing.T) {
	tr, err := bonsai.Grow(context.Background(), separableRows(), bonsai.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 3, tr.Len())

	root, err := tr.Node(tr.Root())
	require.NoError(t, err)
	assert.Equal(t, 0, root.Feature, "ties between features keep the first one")
	assert.Equal(t, 5.0, root.Threshold)
	assert.Equal(t, dataset.Distribution{Fail: 4}, tr.DistributionOf(root.Left, separableRows()))
	assert.Equal(t, dataset.Distribution{Pass: 6}, tr.DistributionOf(root.Right, separableRows()))
}

// TestGrow_Entropy verifies growing with the entropy measure.
func TestGrow_Entropy(t *testing.T) {
	c := bonsai.DefaultConfig()
	c.Impurity = bonsai.Entropy
	tr, err := bonsai.Grow(context.Background(), separableRows(), c)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Len())
}

// TestGrow_EmptyDataset verifies training fails without data.
func TestGrow_EmptyDataset(t *testing.T) {
	tr, err := bonsai.Grow(context.Background(), dataset.New(nil), bonsai.DefaultConfig())
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)
	var te *bonsai.TrainingError
	assert.True(t, errors.As(err, &te))
}

// TestGrow_Cancelled verifies cancellation aborts training.
func TestGrow_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr, err := bonsai.Grow(ctx, separableRows(), bonsai.DefaultConfig())
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestGrow_InvalidConfig verifies configuration validation.
func TestGrow_InvalidConfig(t *testing.T) {
	for name, mutate := range map[string]func(*bonsai.Config){
		"negative depth":    func(c *bonsai.Config) { c.MaxDepth = -1 },
		"min split":         func(c *bonsai.Config) { c.MinSplitSamples = 1 },
		"min leaf":          func(c *bonsai.Config) { c.MinLeafSamples = 0 },
		"negative decrease": func(c *bonsai.Config) { c.MinImpurityDecrease = -0.1 },
		"impurity":          func(c *bonsai.Config) { c.Impurity = "variance" },
	} {
		c := bonsai.DefaultConfig()
		mutate(&c)
		_, err := bonsai.Grow(context.Background(), separableRows(), c)
		var te *bonsai.TrainingError
		assert.True(t, errors.As(err, &te), name)
	}
}

// TestGrow_Limits verifies depth, split size and decrease limits.
func TestGrow_Limits(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := noisyRows(r, 200)

	c := bonsai.DefaultConfig()
	c.MaxDepth = 0
	tr, err := bonsai.Grow(context.Background(), s, c)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())

	c = bonsai.DefaultConfig()
	c.MinImpurityDecrease = 1
	tr, err = bonsai.Grow(context.Background(), s, c)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())

	c = bonsai.DefaultConfig()
	c.MinSplitSamples = 201
	tr, err = bonsai.Grow(context.Background(), s, c)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())

	for depth := 1; depth <= 5; depth++ {
		c = bonsai.DefaultConfig()
		c.MaxDepth = depth
		c.MinImpurityDecrease = 0
		tr, err = bonsai.Grow(context.Background(), s, c)
		require.NoError(t, err)
		assert.LessOrEqual(t, tr.Depth(), depth)
	}
}

// TestGrow_MinLeafSamples verifies no leaf is left with fewer samples
// than required.
func TestGrow_MinLeafSamples(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	s := noisyRows(r, 150)
	c := bonsai.DefaultConfig()
	c.MaxDepth = 6
	c.MinImpurityDecrease = 0
	c.MinLeafSamples = 8
	tr, err := bonsai.Grow(context.Background(), s, c)
	require.NoError(t, err)
	require.NoError(t, tr.Traverse(false, func(n tree.Node) error {
		if n.IsLeaf() {
			assert.GreaterOrEqual(t, tr.DistributionOf(n.ID, s).Total(), 8, "node %d", n.ID)
		}
		return nil
	}))
}

// TestGrow_Deterministic verifies repeated training yields equal trees.
func TestGrow_Deterministic(t *testing.T) {
	s := noisyRows(rand.New(rand.NewSource(4)), 120)
	first, err := bonsai.Grow(context.Background(), s, bonsai.DefaultConfig())
	require.NoError(t, err)
	second, err := bonsai.Grow(context.Background(), s, bonsai.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Greater(t, first.Len(), 1)
}

// TestParseImpurity verifies impurity names.
func TestParseImpurity(t *testing.T) {
	i, err := bonsai.ParseImpurity(" Gini ")
	require.NoError(t, err)
	assert.Equal(t, bonsai.Gini, i)
	i, err = bonsai.ParseImpurity("entropy")
	require.NoError(t, err)
	assert.Equal(t, bonsai.Entropy, i)
	_, err = bonsai.ParseImpurity("mse")
	assert.Error(t, err)
}
