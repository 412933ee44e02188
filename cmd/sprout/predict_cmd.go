package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sproutml/sprout/dataset/csv"
	"github.com/sproutml/sprout/feature/yaml"
	"github.com/sproutml/sprout/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	treeInput     string
	treeName      string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Classify samples with a tree",
		Long:  `Classify CSV samples with an already grown tree, printing one predicted label per line`,
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
			f := os.Stdin
			if config.dataInput != "" {
				f, err = os.Open(config.dataInput)
				if err != nil {
					fmt.Fprintf(os.Stderr, "opening samples at %s: %v\n", config.dataInput, err)
					os.Exit(3)
				}
				defer f.Close()
			}
			samples, err := csv.ReadSamples(f, md.Features)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading samples: %v\n", err)
				os.Exit(3)
			}
			t, err := loadTree(ctx, config.treeInput, config.treeName)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Classifying %d samples...", len(samples))
			for i, sample := range samples {
				label, err := t.Classify(ctx, sample)
				if err != nil {
					if err != tree.ErrCannotClassifySample {
						fmt.Fprintf(os.Stderr, "classifying sample %d: %v\n", i, err)
						os.Exit(5)
					}
					label = "?"
				}
				fmt.Println(label)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV file with the samples to classify (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features of the input samples (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON tree file or a redis URL from which the tree will be read (required)")
	cmd.PersistentFlags().StringVar(&(config.treeName), "name", "tree", "name under which the tree is stored when the tree input is a redis URL")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}
