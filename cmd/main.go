package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/cmd/connect"
	"github.com/alpacahq/holidaystore/cmd/export"
	"github.com/alpacahq/holidaystore/cmd/grid"
	"github.com/alpacahq/holidaystore/cmd/list"
	"github.com/alpacahq/holidaystore/cmd/start"
	"github.com/alpacahq/holidaystore/utils"
	"github.com/alpacahq/holidaystore/utils/log"
)

// flagPrintVersion set flag to show current holidaystore version.
var flagPrintVersion bool

// Execute builds the command tree and executes commands.
func Execute() error {
	// c is the root command.
	c := &cobra.Command{
		Use:   "holidaystore",
		Short: "Regional holiday calendar server and tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print version if specified.
			if flagPrintVersion {
				log.Info("version: %+v", utils.Tag)
				log.Info("commit hash: %+v", utils.GitHash)
				log.Info("utc build time: %+v", utils.BuildStamp)
				return nil
			}
			// Print information regarding usage.
			return cmd.Usage()
		},
	}

	// Adds subcommands and version flag.
	c.AddCommand(start.Cmd)
	c.AddCommand(connect.Cmd)
	c.AddCommand(list.Cmd)
	c.AddCommand(export.Cmd)
	c.AddCommand(grid.Cmd)
	c.Flags().BoolVarP(&flagPrintVersion, "version", "v", false, "show the version info and exit")

	return c.Execute()
}
