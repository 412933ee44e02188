package main

import (
	"context"
	"fmt"
	"os"

	sprout "github.com/sproutml/sprout"
	"github.com/sproutml/sprout/feature/yaml"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	dataCmdConfig
	metadataInput       string
	output              string
	treeName            string
	minSamplesSplit     int
	minSamplesLeaf      int
	minImpurityDecrease float64
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{dataCmdConfig: dataCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a classification decision tree from a set of labeled data.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			md, err := yaml.ReadMetadataFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			ds, labels, err := config.trainingData(ctx, md)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			grower := sprout.New()
			grower.MinSamplesSplit = config.minSamplesSplit
			grower.MinSamplesLeaf = config.minSamplesLeaf
			grower.MinImpurityDecrease = config.minImpurityDecrease
			grower.Logger = config
			config.Logf("Growing tree from %d samples and %d features to predict %s ...", len(labels), len(md.Features), md.Label)
			t, err := grower.Grow(ctx, ds, labels, md.CategoricalFeatureNames(), md.NumericalFeatureNames(), md.SpecialCases)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			config.Logf("%v", t)
			err = saveTree(ctx, config.output, config.treeName, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	config.declareFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features, the label and the special cases of the input data (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file or a redis URL to which the grown tree will be written in JSON format (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.treeName), "name", "tree", "name under which the tree is saved when the output is a redis URL")
	cmd.PersistentFlags().IntVar(&(config.minSamplesSplit), "min-samples-split", 2, "minimum number of samples a node must have for a split to be attempted")
	cmd.PersistentFlags().IntVar(&(config.minSamplesLeaf), "min-samples-leaf", 1, "minimum number of samples required at a leaf node")
	cmd.PersistentFlags().Float64Var(&(config.minImpurityDecrease), "min-impurity-decrease", 0.05, "minimum information-gain score a feature must exceed to be selected for a split")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}
