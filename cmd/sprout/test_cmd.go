package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sproutml/sprout/feature/yaml"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	dataCmdConfig
	metadataInput string
	treeInput     string
	treeName      string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{dataCmdConfig: dataCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a labeled test data set`,
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
			t, err := loadTree(ctx, config.treeInput, config.treeName)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Testing tree against %d samples...", len(labels))
			successRate, errCount, err := t.Test(ctx, ds, labels)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			fmt.Printf("%f success rate, failed to classify %d samples\n", successRate, errCount)
		},
	}
	config.declareFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features and the label of the input data (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON tree file or a redis URL from which the tree to test will be read (required)")
	cmd.PersistentFlags().StringVar(&(config.treeName), "name", "tree", "name under which the tree is stored when the tree input is a redis URL")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}
