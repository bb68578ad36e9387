package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/viewlog/internal/config"
)

func newInitCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "Where to write the config (default: XDG config dir)")
	return cmd
}
