package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	featurejson "github.com/pbanos/bonsai/feature/json"
	"github.com/pbanos/bonsai/tree"
	"github.com/spf13/cobra"
)

type predictionOutput struct {
	Passed     bool            `json:"passed"`
	Outcome    string          `json:"outcome"`
	Confidence float64         `json:"confidence"`
	Samples    int             `json:"samples"`
	Merge      tree.MergeKind  `json:"merge"`
	Path       json.RawMessage `json:"path"`
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict whether a sample passes",
		Long:  `Grow a tree from a set of data and use it to predict whether the sample with the given feature values passes, folding undersized branches as the tree command shows them`,
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
			if !s.IsSet("x0") || !s.IsSet("x1") {
				exit(exitSettings, fmt.Errorf("required x0 and x1 flags were not set"))
			}
			tr := grow(ctx, s)
			point := dataset.Point{s.GetFloat64("x0"), s.GetFloat64("x1")}
			p, err := tr.tree.Predict(tr.dataset, minSamples, point)
			if err != nil {
				exit(exitQuery, err)
			}
			err = writeOutput(cmd, s.GetString("output"), func(w io.Writer) error {
				if s.GetBool("json") {
					return writePrediction(w, tr, p)
				}
				_, err := fmt.Fprintf(w, "%s: %s with a pass rate of %.1f%% over %d training samples\n",
					describePoint(tr.md, point), tr.md.Label.Format(p.Passed), p.Confidence, p.Weight())
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
	cmd.Flags().Float64("x0", 0, "value of the sample's first feature (required)")
	cmd.Flags().Float64("x1", 0, "value of the sample's second feature (required)")
	return cmd
}

func writePrediction(w io.Writer, tr *training, p *tree.Prediction) error {
	path, err := featurejson.NewCriteriaEncodeDecoder(tr.md).Encode(tr.tree.Path(p.Node))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&predictionOutput{
		Passed:     p.Passed,
		Outcome:    tr.md.Label.Format(p.Passed),
		Confidence: p.Confidence,
		Samples:    p.Weight(),
		Merge:      p.Merge,
		Path:       path,
	})
}

func describePoint(md *feature.Metadata, p dataset.Point) string {
	return fmt.Sprintf("%s=%g, %s=%g", md.Features[0].Name(), p[0], md.Features[1].Name(), p[1])
}
