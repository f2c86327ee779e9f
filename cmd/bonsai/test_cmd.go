package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a set of data and test the predictions it makes, folding undersized branches, against a test data set`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			s, err := newSettings(cmd, rootConfig)
			if err != nil {
				exit(exitSettings, err)
			}
			minSamples, err := s.minSamples()
			if err != nil {
				exit(exitSettings, err)
			}
			if s.GetString("test-input") == "" {
				exit(exitSettings, fmt.Errorf("required test-input flag was not set"))
			}
			tr := grow(ctx, s)
			testingSet, err := s.readDataset(ctx, s.GetString("test-input"), tr.md)
			if err != nil {
				exit(exitTestingSet, fmt.Errorf("reading testing set: %v", err))
			}
			s.logger.Info("testing tree", zap.Int("samples", testingSet.Count()), zap.Int("minSamples", minSamples))
			successRate, err := tr.tree.Test(tr.dataset, minSamples, testingSet)
			if err != nil {
				exit(exitEvaluation, fmt.Errorf("testing tree: %v", err))
			}
			err = writeOutput(cmd, s.GetString("output"), func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%f success rate over %d samples\n", successRate, testingSet.Count())
				return err
			})
			if err != nil {
				exit(exitOutput, err)
			}
		},
	}
	addDataFlags(cmd)
	addTrainingFlags(cmd)
	addMinSamplesFlag(cmd)
	cmd.Flags().StringP("test-input", "t", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to test the tree against (required)")
	cmd.Flags().StringP("output", "o", "", "path to a file to write the output to (defaults to STDOUT)")
	return cmd
}
