package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pbanos/bonsai"
	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/dataset/csv"
	"github.com/pbanos/bonsai/dataset/mongodataset"
	"github.com/pbanos/bonsai/dataset/sqldataset"
	"github.com/pbanos/bonsai/dataset/sqldataset/pgadapter"
	"github.com/pbanos/bonsai/dataset/sqldataset/sqlite3adapter"
	"github.com/pbanos/bonsai/feature"
	featurejson "github.com/pbanos/bonsai/feature/json"
	"github.com/pbanos/bonsai/feature/yaml"
	"github.com/pbanos/bonsai/tree"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	mgo "gopkg.in/mgo.v2"
)

const (
	envPrefix      = "BONSAI"
	configFileName = "bonsai"

	mongoDialTimeout = 10 * time.Second

	defaultMinSamples = 2
)

/*
settings holds the values for a command's flags, taken in order of
precedence from the command line, BONSAI_* environment variables (with
dashes replaced by underscores) and the configuration file.
*/
type settings struct {
	*viper.Viper
	logger *zap.Logger
}

func newSettings(cmd *cobra.Command, rootConfig *rootCmdConfig) (*settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if rootConfig.configFile != "" {
		v.SetConfigFile(rootConfig.configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || rootConfig.configFile != "" {
			return nil, fmt.Errorf("reading configuration: %v", err)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	logger := rootConfig.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if f := v.ConfigFileUsed(); f != "" {
		logger.Debug("using configuration file", zap.String("path", f))
	}
	return &settings{v, logger}, nil
}

func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringP("metadata", "m", "", "path to a YML file with metadata naming the features and the label on the input (defaults to features x0 and x1 and label passed)")
	cmd.Flags().String("table", "samples", "table or collection holding the samples on SQL and MongoDB inputs")
	cmd.Flags().Bool("skip-invalid", false, "skip CSV rows with invalid values instead of failing")
}

func addTrainingFlags(cmd *cobra.Command) {
	c := bonsai.DefaultConfig()
	cmd.Flags().Int("max-depth", c.MaxDepth, "maximum number of splits from the root to any leaf")
	cmd.Flags().Int("min-split-samples", c.MinSplitSamples, "minimum number of samples a node must hold to be split")
	cmd.Flags().Int("min-leaf-samples", c.MinLeafSamples, "minimum number of samples each side of a split must hold")
	cmd.Flags().String("impurity", string(c.Impurity), "impurity measure to select splits with: gini or entropy")
	cmd.Flags().Float64("min-impurity-decrease", c.MinImpurityDecrease, "decrease in impurity a split must exceed")
}

func addMinSamplesFlag(cmd *cobra.Command) {
	cmd.Flags().Int("min-samples", defaultMinSamples, "minimum number of training samples a branch must hold to be shown and trusted on its own")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "path to a file to write the output to (defaults to STDOUT)")
	cmd.Flags().Bool("json", false, "write the output in JSON format")
}

func (s *settings) metadata() (*feature.Metadata, error) {
	path := s.GetString("metadata")
	if path == "" {
		return feature.NewMetadata("x0", "x1", "passed"), nil
	}
	return yaml.ReadMetadataFromFile(path)
}

func (s *settings) trainingConfig() (bonsai.Config, error) {
	impurity, err := bonsai.ParseImpurity(s.GetString("impurity"))
	if err != nil {
		return bonsai.Config{}, err
	}
	c := bonsai.Config{
		MaxDepth:            s.GetInt("max-depth"),
		MinSplitSamples:     s.GetInt("min-split-samples"),
		MinLeafSamples:      s.GetInt("min-leaf-samples"),
		Impurity:            impurity,
		MinImpurityDecrease: s.GetFloat64("min-impurity-decrease"),
		Logger:              s.logger,
	}
	return c, c.Validate()
}

func (s *settings) minSamples() (int, error) {
	m := s.GetInt("min-samples")
	if err := (tree.MergePolicy{MinSamples: m}).Validate(); err != nil {
		return 0, fmt.Errorf("min-samples: %w", err)
	}
	return m, nil
}

/*
readDataset reads the dataset at the given input: a PostgreSQL or MongoDB
connection URL, a path to a SQLite3 file with the .db extension or else a
path to a CSV file, "" meaning STDIN.
*/
func (s *settings) readDataset(ctx context.Context, input string, md *feature.Metadata) (*dataset.Dataset, error) {
	table := s.GetString("table")
	switch {
	case strings.HasPrefix(input, "postgres://"), strings.HasPrefix(input, "postgresql://"):
		s.logger.Debug("reading dataset from PostgreSQL", zap.String("table", table))
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.Read(ctx, adapter, md, table)
	case strings.HasPrefix(input, "mongodb://"):
		s.logger.Debug("reading dataset from MongoDB", zap.String("collection", table))
		session, err := mgo.DialWithTimeout(input, mongoDialTimeout)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		return mongodataset.Read(ctx, session, md, table)
	case strings.HasSuffix(input, ".db"):
		s.logger.Debug("reading dataset from SQLite3", zap.String("path", input), zap.String("table", table))
		adapter, err := sqlite3adapter.New(input)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.Read(ctx, adapter, md, table)
	}
	if input == "" {
		s.logger.Debug("reading CSV dataset from STDIN")
	} else {
		s.logger.Debug("reading CSV dataset", zap.String("path", input))
	}
	r := &csv.Reader{Metadata: md, SkipInvalid: s.GetBool("skip-invalid"), Logger: s.logger}
	return r.ReadFile(input)
}

/*
writeDataset writes the dataset to the given output, chosen the same way
readDataset chooses its input, and returns the number of rows written. CSV
goes to stdout when output is "".
*/
func (s *settings) writeDataset(ctx context.Context, output string, stdout io.Writer, md *feature.Metadata, ds *dataset.Dataset) (int, error) {
	table := s.GetString("output-table")
	switch {
	case strings.HasPrefix(output, "postgres://"), strings.HasPrefix(output, "postgresql://"):
		s.logger.Debug("writing dataset to PostgreSQL", zap.String("table", table))
		adapter, err := pgadapter.New(output)
		if err != nil {
			return 0, err
		}
		defer adapter.Close()
		return sqldataset.Write(ctx, adapter, md, table, ds)
	case strings.HasPrefix(output, "mongodb://"):
		s.logger.Debug("writing dataset to MongoDB", zap.String("collection", table))
		session, err := mgo.DialWithTimeout(output, mongoDialTimeout)
		if err != nil {
			return 0, fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		return mongodataset.Write(ctx, session, md, table, ds)
	case strings.HasSuffix(output, ".db"):
		s.logger.Debug("writing dataset to SQLite3", zap.String("path", output), zap.String("table", table))
		adapter, err := sqlite3adapter.New(output)
		if err != nil {
			return 0, err
		}
		defer adapter.Close()
		return sqldataset.Write(ctx, adapter, md, table, ds)
	}
	if output == "" {
		if err := csv.Write(stdout, md, ds); err != nil {
			return 0, err
		}
		return ds.Count(), nil
	}
	s.logger.Debug("writing CSV dataset", zap.String("path", output))
	f, err := os.Create(output)
	if err != nil {
		return 0, err
	}
	if err = csv.Write(f, md, ds); err != nil {
		f.Close()
		return 0, err
	}
	return ds.Count(), f.Close()
}

// criteria returns the criteria given with the where flag, if any
func (s *settings) criteria(md *feature.Metadata) ([]feature.Criterion, error) {
	where := s.GetString("where")
	if where == "" {
		return nil, nil
	}
	criteria, err := featurejson.NewCriteriaEncodeDecoder(md).Decode([]byte(where))
	if err != nil {
		return nil, fmt.Errorf("parsing where criteria: %v", err)
	}
	return criteria, nil
}
