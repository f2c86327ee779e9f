package tree_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/pbanos/bonsai/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioRows returns 4 failing rows with x0 <= 5 and 6 passing rows
// with x0 > 5.
func scenarioRows() *dataset.Dataset {
	var rows []dataset.Row
	for i := 1; i <= 4; i++ {
		rows = append(rows, dataset.NewRow(float64(i), float64(10*i), false))
	}
	for i := 6; i <= 11; i++ {
		rows = append(rows, dataset.NewRow(float64(i), float64(10*i), true))
	}
	return dataset.New(rows)
}

// singleSplit returns a tree splitting once on x0 at 5.
func singleSplit(t *testing.T) *tree.Tree {
	b := tree.NewBuilder()
	_, _, err := b.Split(b.Root(), 0, 5)
	require.NoError(t, err)
	return b.Build()
}

// randomRows returns n rows with values in [0, 10) and random labels.
func randomRows(r *rand.Rand, n int) *dataset.Dataset {
	rows := make([]dataset.Row, n)
	for i := range rows {
		rows[i] = dataset.NewRow(math.Floor(r.Float64()*100)/10, math.Floor(r.Float64()*100)/10, r.Intn(2) == 1)
	}
	return dataset.New(rows)
}

// randomTree grows a tree of at most maxDepth levels by splitting
// random leaves on random features and thresholds.
func randomTree(t *testing.T, r *rand.Rand, splits, maxDepth int) *tree.Tree {
	b := tree.NewBuilder()
	depth := map[tree.NodeID]int{b.Root(): 0}
	leaves := []tree.NodeID{b.Root()}
	for i := 0; i < splits && len(leaves) > 0; i++ {
		k := r.Intn(len(leaves))
		id := leaves[k]
		leaves = append(leaves[:k], leaves[k+1:]...)
		if depth[id] >= maxDepth {
			continue
		}
		left, right, err := b.Split(id, r.Intn(feature.Count), math.Floor(r.Float64()*100)/10)
		require.NoError(t, err)
		depth[left], depth[right] = depth[id]+1, depth[id]+1
		leaves = append(leaves, left, right)
	}
	return b.Build()
}

// TestBuilder_Split verifies node wiring and parent annotation.
func TestBuilder_Split(t *testing.T) {
	b := tree.NewBuilder()
	left, right, err := b.Split(b.Root(), 1, 2.5)
	require.NoError(t, err)
	ll, lr, err := b.Split(left, 0, 1)
	require.NoError(t, err)
	tr := b.Build()

	assert.Equal(t, 5, tr.Len())
	root, err := tr.Node(tr.Root())
	require.NoError(t, err)
	assert.False(t, root.IsLeaf())
	assert.Equal(t, left, root.Left)
	assert.Equal(t, right, root.Right)
	assert.Equal(t, 1, root.Feature)
	assert.Equal(t, 2.5, root.Threshold)

	p, side := tr.Parent(lr)
	assert.Equal(t, left, p)
	assert.Equal(t, feature.Right, side)
	p, side = tr.Parent(ll)
	assert.Equal(t, left, p)
	assert.Equal(t, feature.Left, side)
	p, _ = tr.Parent(tr.Root())
	assert.Equal(t, tree.NoNode, p)
	assert.Equal(t, 2, tr.Depth())
}

// TestBuilder_SplitErrors verifies invalid splits are rejected.
func TestBuilder_SplitErrors(t *testing.T) {
	b := tree.NewBuilder()
	_, _, err := b.Split(7, 0, 1)
	assert.ErrorIs(t, err, tree.ErrUnknownNode)
	_, _, err = b.Split(b.Root(), 2, 1)
	assert.Error(t, err, "feature index out of range")
	_, _, err = b.Split(b.Root(), 0, math.NaN())
	assert.Error(t, err, "non-finite threshold")
	_, _, err = b.Split(b.Root(), 0, 1)
	require.NoError(t, err)
	_, _, err = b.Split(b.Root(), 0, 1)
	assert.Error(t, err, "splitting a split")
}

// TestBuilder_BuildIsolated verifies later splits do not alter built trees.
func TestBuilder_BuildIsolated(t *testing.T) {
	b := tree.NewBuilder()
	first := b.Build()
	_, _, err := b.Split(b.Root(), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 3, b.Build().Len())
}

// TestTree_Path verifies root-to-node order of criteria.
func TestTree_Path(t *testing.T) {
	b := tree.NewBuilder()
	_, right, err := b.Split(b.Root(), 0, 5)
	require.NoError(t, err)
	rl, _, err := b.Split(right, 1, 50)
	require.NoError(t, err)
	tr := b.Build()

	assert.Empty(t, tr.Path(tr.Root()))
	assert.Equal(t, []feature.Criterion{
		feature.NewCriterion(0, 5, feature.Right),
		feature.NewCriterion(1, 50, feature.Left),
	}, tr.Path(rl))
}

// TestTree_Traverse verifies pre-order and post-order visits.
func TestTree_Traverse(t *testing.T) {
	b := tree.NewBuilder()
	left, _, err := b.Split(b.Root(), 0, 5)
	require.NoError(t, err)
	_, _, err = b.Split(left, 1, 5)
	require.NoError(t, err)
	tr := b.Build()

	var pre, post []tree.NodeID
	require.NoError(t, tr.Traverse(false, func(n tree.Node) error {
		pre = append(pre, n.ID)
		return nil
	}))
	require.NoError(t, tr.Traverse(true, func(n tree.Node) error {
		post = append(post, n.ID)
		return nil
	}))
	assert.Equal(t, []tree.NodeID{0, 1, 3, 4, 2}, pre)
	assert.Equal(t, []tree.NodeID{3, 4, 1, 2, 0}, post)
}

// TestTree_Describe verifies the text rendering names features.
func TestTree_Describe(t *testing.T) {
	md := feature.NewMetadata("hours", "attendance", "passed")
	out := singleSplit(t).Describe(md)
	assert.True(t, strings.HasPrefix(out, "[0]\n|\n"), out)
	assert.Contains(t, out, "hours <= 5.0")
	assert.Contains(t, out, "hours > 5.0")
}
