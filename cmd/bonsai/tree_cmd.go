package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	treejson "github.com/pbanos/bonsai/tree/json"
	"github.com/spf13/cobra"
)

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow a tree and print it with undersized branches folded",
		Long:  `Grow a tree from a set of data and print the tree as presented to users: splits with a branch holding fewer than min-samples training samples are folded into a single leaf`,
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
			tr := grow(ctx, s)
			en, err := tr.tree.Materialize(tr.dataset, minSamples)
			if err != nil {
				exit(exitEvaluation, err)
			}
			err = writeOutput(cmd, s.GetString("output"), func(w io.Writer) error {
				if s.GetBool("json") {
					return treejson.WriteEffective(w, en, tr.md)
				}
				_, err := fmt.Fprint(w, en.Describe(tr.md))
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
	addOutputFlags(cmd)
	return cmd
}
