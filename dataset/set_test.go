package dataset_test

import (
	"math"
	"testing"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows() []dataset.Row {
	return []dataset.Row{
		dataset.NewRow(1, 10, false),
		dataset.NewRow(2, 20, false),
		dataset.NewRow(2, 30, true),
		dataset.NewRow(6, 60, true),
		dataset.NewRow(8, 80, true),
	}
}

func TestDataset_Distribution(t *testing.T) {
	s := dataset.New(rows())
	assert.Equal(t, dataset.Distribution{Fail: 2, Pass: 3}, s.Distribution())
	assert.Equal(t, dataset.Distribution{Fail: 2, Pass: 1}, s.Distribution(feature.NewCriterion(0, 2, feature.Left)))
	assert.Equal(t, dataset.Distribution{Fail: 0, Pass: 2}, s.Distribution(feature.NewCriterion(0, 2, feature.Right)))
	assert.Equal(t, dataset.Distribution{Fail: 1, Pass: 1}, s.Distribution(
		feature.NewCriterion(0, 2, feature.Left),
		feature.NewCriterion(1, 10, feature.Right),
	))
	assert.Equal(t, dataset.Distribution{}, dataset.New(nil).Distribution())
}

func TestDataset_SubsetWith(t *testing.T) {
	s := dataset.New(rows())
	sub := s.SubsetWith(feature.NewCriterion(1, 30, feature.Left))
	assert.Equal(t, rows()[:3], sub.Rows())
	assert.Equal(t, 5, s.Count())
	assert.True(t, s.SubsetWith(feature.NewCriterion(0, 100, feature.Right)).Empty())
}

func TestDataset_NewCopies(t *testing.T) {
	rs := rows()
	s := dataset.New(rs)
	rs[0].Passed = true
	assert.Equal(t, dataset.Distribution{Fail: 2, Pass: 3}, s.Distribution())
}

func TestDataset_NewValidated(t *testing.T) {
	_, err := dataset.NewValidated(append(rows(), dataset.NewRow(math.Inf(1), 0, true)))
	assert.ErrorIs(t, err, dataset.ErrNonFinite)
	s, err := dataset.NewValidated(rows())
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count())
}

func TestDataset_Values(t *testing.T) {
	s := dataset.New(rows())
	assert.Equal(t, []float64{1, 2, 6, 8}, s.Values(0))
	assert.Equal(t, []float64{10, 20, 30, 60, 80}, s.Values(1))
	assert.Empty(t, dataset.New(nil).Values(0))
}

func TestDistribution(t *testing.T) {
	d := dataset.Distribution{Fail: 4, Pass: 6}
	assert.Equal(t, 10, d.Total())
	assert.InDelta(t, 60.0, d.PassRate(), 1e-9)
	assert.True(t, d.Passed())
	assert.False(t, dataset.Distribution{Fail: 3, Pass: 3}.Passed(), "ties resolve to not passed")
	assert.Equal(t, 0.0, dataset.Distribution{}.PassRate())
	assert.False(t, dataset.Distribution{}.Passed())
	assert.Equal(t, dataset.Distribution{Fail: 5, Pass: 8}, d.Add(dataset.Distribution{Fail: 1, Pass: 2}))
	assert.Equal(t, "(4, 6)", d.String())
}

func TestDistribution_Impurity(t *testing.T) {
	assert.Equal(t, 0.0, dataset.Distribution{Fail: 4}.Gini())
	assert.Equal(t, 0.0, dataset.Distribution{Pass: 4}.Entropy())
	assert.InDelta(t, 0.5, dataset.Distribution{Fail: 2, Pass: 2}.Gini(), 1e-9)
	assert.InDelta(t, 1.0, dataset.Distribution{Fail: 2, Pass: 2}.Entropy(), 1e-9)
	assert.InDelta(t, 0.48, dataset.Distribution{Fail: 4, Pass: 6}.Gini(), 1e-9)
	assert.Equal(t, 0.0, dataset.Distribution{}.Gini())
	assert.Equal(t, 0.0, dataset.Distribution{}.Entropy())
}
