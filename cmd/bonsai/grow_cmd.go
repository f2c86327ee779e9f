package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pbanos/bonsai"
	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/pbanos/bonsai/tree"
	treejson "github.com/pbanos/bonsai/tree/json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes for the stages every command goes through
const (
	exitSettings = iota + 1
	exitMetadata
	exitTrainingSet
	exitTestingSet
	exitGrowing
	exitQuery
	exitEvaluation
	exitOutput
)

/*
training holds the outcome of the stages shared by the commands: the
metadata, the training dataset and the tree grown from it.
*/
type training struct {
	md      *feature.Metadata
	dataset *dataset.Dataset
	tree    *tree.Tree
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict whether samples pass and print it as trained`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			s, err := newSettings(cmd, rootConfig)
			if err != nil {
				exit(exitSettings, err)
			}
			tr := grow(ctx, s)
			err = writeOutput(cmd, s.GetString("output"), func(w io.Writer) error {
				if s.GetBool("json") {
					return treejson.WriteTree(w, tr.tree, tr.md)
				}
				_, err := fmt.Fprint(w, tr.tree.Describe(tr.md))
				return err
			})
			if err != nil {
				exit(exitOutput, err)
			}
		},
	}
	addDataFlags(cmd)
	addTrainingFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}

/*
grow runs the stages shared by the commands, exiting with the code for the
failing stage on errors.
*/
func grow(ctx context.Context, s *settings) *training {
	c, err := s.trainingConfig()
	if err != nil {
		exit(exitSettings, err)
	}
	md, err := s.metadata()
	if err != nil {
		exit(exitMetadata, err)
	}
	ds, err := s.readDataset(ctx, s.GetString("input"), md)
	if err != nil {
		exit(exitTrainingSet, fmt.Errorf("reading training set: %v", err))
	}
	s.logger.Info("growing tree",
		zap.Int("samples", ds.Count()),
		zap.Int("maxDepth", c.MaxDepth),
		zap.String("impurity", string(c.Impurity)))
	t, err := bonsai.Grow(ctx, ds, c)
	if err != nil {
		exit(exitGrowing, err)
	}
	s.logger.Info("grown tree", zap.Int("nodes", t.Len()), zap.Int("depth", t.Depth()))
	return &training{md, ds, t}
}

func writeOutput(cmd *cobra.Command, outputPath string, write func(io.Writer) error) error {
	if outputPath == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exit(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
}
