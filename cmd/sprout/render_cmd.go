package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sproutml/sprout/dot"
	"github.com/spf13/cobra"
)

type renderCmdConfig struct {
	*rootCmdConfig
	treeInput        string
	treeName         string
	output           string
	rounded          bool
	showSamples      bool
	showDistribution bool
	showLabel        bool
}

func renderCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &renderCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a tree as a Graphviz DOT document",
		Long:  `Render an already grown tree as a Graphviz DOT document to be drawn by an external graph-rendering engine`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			t, err := loadTree(ctx, config.treeInput, config.treeName)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			opts := dot.Options{
				Rounded:          config.rounded,
				ShowSamples:      config.showSamples,
				ShowDistribution: config.showDistribution,
				ShowLabel:        config.showLabel,
			}
			if config.output == "" {
				err = dot.Write(os.Stdout, t, opts)
			} else {
				err = dot.WriteFile(config.output, t, opts)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "rendering tree: %v\n", err)
				os.Exit(3)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON tree file or a redis URL from which the tree will be read (required)")
	cmd.PersistentFlags().StringVar(&(config.treeName), "name", "tree", "name under which the tree is stored when the tree input is a redis URL")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the DOT document will be written (defaults to STDOUT)")
	cmd.PersistentFlags().BoolVar(&(config.rounded), "rounded", false, "draw node boxes with rounded corners")
	cmd.PersistentFlags().BoolVar(&(config.showSamples), "samples", false, "show the sample count of every node")
	cmd.PersistentFlags().BoolVar(&(config.showDistribution), "distribution", false, "show the class distribution of every node")
	cmd.PersistentFlags().BoolVar(&(config.showLabel), "label", false, "show the majority label of every node")
	return cmd
}

func (rcc *renderCmdConfig) Validate() error {
	if rcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}
