package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sprout",
		Short: "sprout is a tool to grow classification decision trees",
		Long:  `A tool to grow classification decision trees from labeled data with categorical and numerical features, test them, render them and use them to classify samples`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), predictCmd(config), renderCmd(config))
	return rootCmd
}
