package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bagelhole-directory/pkg/container"
)

// app is the shared dependency graph, built once before any subcommand
// runs and torn down afterwards.
var app *container.Container

var rootCmd = &cobra.Command{
	Use:   "directory",
	Short: "Bagelhole restaurant directory",
	Long: `Bagelhole is a local-first restaurant directory: browse a static
catalog, read and submit reviews with photos, and moderate the pending
queue. Reviews live in a single local store file; nothing leaves this
machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = container.NewContainer(cmd.Context())
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.Cleanup()
		}
	},
}

// Execute runs the CLI, printing the failure on stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
