package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "viewlog",
		Short: "Track the movies, series, books and magazines you consume",
		Long: `viewlog - personal media consumption tracker

Browse your catalog, mark movies, chapters, books and magazines as
consumed, and write a report of everything you have seen or read.

Running viewlog without a command starts the interactive session.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("viewlog {{.Version}}\n")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newReportCmd(opts),
		newImportCmd(opts),
		newFindCmd(opts),
		newHistoryCmd(opts),
		newUsersCmd(opts),
		newInitCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "viewlog %s\n", version)
		},
	}
}
