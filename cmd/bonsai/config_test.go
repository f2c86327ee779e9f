package main

import (
	"context"
	"testing"

	"github.com/pbanos/bonsai"
	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/tree"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings(t *testing.T, rootConfig *rootCmdConfig, args ...string) *settings {
	cmd := &cobra.Command{Use: "test"}
	addDataFlags(cmd)
	addTrainingFlags(cmd)
	addMinSamplesFlag(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	s, err := newSettings(cmd, rootConfig)
	require.NoError(t, err)
	return s
}

func TestSettings_Defaults(t *testing.T) {
	s := testSettings(t, &rootCmdConfig{})
	c, err := s.trainingConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, c.MaxDepth)
	assert.Equal(t, bonsai.Gini, c.Impurity)
	m, err := s.minSamples()
	require.NoError(t, err)
	assert.Equal(t, 2, m)

	md, err := s.metadata()
	require.NoError(t, err)
	assert.Equal(t, "x0", md.Features[0].Name())
	assert.Equal(t, "passed", md.Label.Name())
}

func TestSettings_Precedence(t *testing.T) {
	t.Setenv("BONSAI_MAX_DEPTH", "1")
	t.Setenv("BONSAI_MIN_SAMPLES", "4")
	t.Setenv("BONSAI_IMPURITY", "entropy")
	s := testSettings(t, &rootCmdConfig{configFile: "testdata/bonsai.yml"}, "--max-depth", "5")

	c, err := s.trainingConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, c.MaxDepth, "flags override the environment")
	assert.Equal(t, bonsai.Entropy, c.Impurity)
	m, err := s.minSamples()
	require.NoError(t, err)
	assert.Equal(t, 4, m, "the environment overrides the configuration file")

	md, err := s.metadata()
	require.NoError(t, err)
	assert.Equal(t, "hours", md.Features[0].Name())
	assert.Equal(t, "yes", md.Label.PassValue())
}

func TestSettings_ConfigFile(t *testing.T) {
	s := testSettings(t, &rootCmdConfig{configFile: "testdata/bonsai.yml"})
	c, err := s.trainingConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, c.MaxDepth)
	m, err := s.minSamples()
	require.NoError(t, err)
	assert.Equal(t, 5, m)
}

func TestSettings_MissingConfigFile(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	_, err := newSettings(cmd, &rootCmdConfig{configFile: "testdata/missing.yml"})
	assert.Error(t, err)
}

func TestSettings_Invalid(t *testing.T) {
	s := testSettings(t, &rootCmdConfig{}, "--impurity", "variance")
	_, err := s.trainingConfig()
	assert.Error(t, err)

	s = testSettings(t, &rootCmdConfig{}, "--min-samples", "0")
	_, err = s.minSamples()
	assert.ErrorIs(t, err, tree.ErrInvalidThreshold)
}

func TestSettings_ReadDataset(t *testing.T) {
	s := testSettings(t, &rootCmdConfig{}, "-m", "testdata/students.yml")
	md, err := s.metadata()
	require.NoError(t, err)
	ds, err := s.readDataset(context.Background(), "testdata/students.csv", md)
	require.NoError(t, err)
	assert.Equal(t, 10, ds.Count())
	assert.Equal(t, dataset.Distribution{Fail: 4, Pass: 6}, ds.Distribution())
}
