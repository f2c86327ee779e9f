package dataset_test

import (
	"math"
	"testing"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	for _, v := range []interface{}{2.5, float32(2.5), " 2.5 ", []byte("2.5")} {
		f, err := dataset.ParseFloat(v)
		require.NoError(t, err, "%v", v)
		assert.Equal(t, 2.5, f)
	}
	f, err := dataset.ParseFloat(int64(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = dataset.ParseFloat("three")
	assert.Error(t, err)
	_, err = dataset.ParseFloat(nil)
	assert.Error(t, err)
	_, err = dataset.ParseFloat(struct{}{})
	assert.Error(t, err)
	_, err = dataset.ParseFloat(math.NaN())
	assert.ErrorIs(t, err, dataset.ErrNonFinite)
	_, err = dataset.ParseFloat("-Inf")
	assert.ErrorIs(t, err, dataset.ErrNonFinite)
}

func TestParseRow(t *testing.T) {
	md := &feature.Metadata{
		Features: [feature.Count]*feature.ContinuousFeature{
			feature.NewContinuousFeature("hours", 0),
			feature.NewContinuousFeature("attendance", 1),
		},
		Label: feature.NewLabel("result", "pass", "fail"),
	}
	r, err := dataset.ParseRow(md, "4", 85, "pass")
	require.NoError(t, err)
	assert.Equal(t, dataset.NewRow(4, 85, true), r)

	r, err = dataset.ParseRow(md, 4.0, "85", false)
	require.NoError(t, err)
	assert.Equal(t, dataset.NewRow(4, 85, false), r)

	_, err = dataset.ParseRow(md, 4.0, "85", "unknown")
	assert.Error(t, err)
	_, err = dataset.ParseRow(md, 4.0, "inf", "pass")
	assert.ErrorIs(t, err, dataset.ErrNonFinite)
	_, err = dataset.ParseRow(md, 4.0, 85, nil)
	assert.Error(t, err)
}
