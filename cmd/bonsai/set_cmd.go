package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long:  `Copy a set of data from one source to another, optionally keeping only the samples that satisfy the criteria given with the where flag`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			s, err := newSettings(cmd, rootConfig)
			if err != nil {
				exit(exitSettings, err)
			}
			md, err := s.metadata()
			if err != nil {
				exit(exitMetadata, err)
			}
			criteria, err := s.criteria(md)
			if err != nil {
				exit(exitSettings, err)
			}
			ds, err := s.readDataset(ctx, s.GetString("input"), md)
			if err != nil {
				exit(exitTrainingSet, err)
			}
			if len(criteria) > 0 {
				ds = ds.SubsetWith(criteria...)
			}
			n, err := s.writeDataset(ctx, s.GetString("output"), cmd.OutOrStdout(), md, ds)
			if err != nil {
				exit(exitOutput, err)
			}
			s.logger.Info("dataset written", zap.Int("samples", n))
		},
	}
	addDataFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to write the set to (defaults to STDOUT in CSV)")
	cmd.Flags().String("output-table", "samples", "table or collection to write the samples to on SQL and MongoDB outputs")
	cmd.Flags().StringP("where", "w", "", `JSON array of criteria the samples must satisfy, like [{"f":"hours","op":">","v":5}]`)
	return cmd
}
