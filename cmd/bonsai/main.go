package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose    bool
	configFile string
	logger     *zap.Logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{logger: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "bonsai",
		Short: "bonsai is a tool to grow shallow decision trees",
		Long:  `A tool to grow shallow pass/fail decision trees over two features from your data, present them folding undersized branches, and use them to make predictions`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(config.verbose)
			if err != nil {
				return err
			}
			config.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log debug information on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YML configuration file (defaults to bonsai.yml on the working directory, if present)")
	rootCmd.AddCommand(versionCmd(), growCmd(config), treeCmd(config), predictCmd(config), testCmd(config), setCmd(config))
	return rootCmd
}
