package bonsai

import (
	"testing"

	"github.com/pbanos/bonsai/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPartition_Midpoints verifies thresholds are midpoints between
// consecutive distinct values and the best one is chosen.
func TestNewPartition_Midpoints(t *testing.T) {
	s := dataset.New([]dataset.Row{
		dataset.NewRow(1, 0, false),
		dataset.NewRow(1, 0, false),
		dataset.NewRow(3, 0, false),
		dataset.NewRow(7, 0, true),
		dataset.NewRow(9, 0, true),
	})
	p, err := newPartition(s, 0, Gini)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 5.0, p.Threshold)
	assert.Equal(t, 3, p.Left.Count())
	assert.Equal(t, 2, p.Right.Count())
	assert.InDelta(t, s.Gini(), p.ImpurityDecrease(), 1e-12, "a pure split removes all impurity")
}

// TestNewPartition_SingleValue verifies constant features cannot partition.
func TestNewPartition_SingleValue(t *testing.T) {
	s := dataset.New([]dataset.Row{
		dataset.NewRow(1, 2, false),
		dataset.NewRow(1, 3, true),
	})
	p, err := newPartition(s, 0, Gini)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = bestPartition(s, Entropy)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Feature)
	assert.Equal(t, 2.5, p.Threshold)
	assert.InDelta(t, 1.0, p.ImpurityDecrease(), 1e-12)
}

// TestPruners verifies the pruners built from a configuration.
func TestPruners(t *testing.T) {
	s := dataset.New([]dataset.Row{
		dataset.NewRow(1, 0, false),
		dataset.NewRow(2, 0, true),
		dataset.NewRow(3, 0, true),
	})
	p, err := newPartition(s, 0, Gini)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.False(t, NoPruner().Prune(s, p))
	assert.True(t, FixedImpurityDecreasePruner(p.ImpurityDecrease()).Prune(s, p))
	assert.False(t, FixedImpurityDecreasePruner(0).Prune(s, p))
	assert.True(t, MinimumLeafPruner(2).Prune(s, p))
	assert.False(t, MinimumLeafPruner(1).Prune(s, p))
	assert.True(t, AnyPruner(NoPruner(), MinimumLeafPruner(2)).Prune(s, p))
	assert.False(t, AnyPruner().Prune(s, p))
}
