package main

import "github.com/spf13/cobra"

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run the full cycle: extract, edit, compile",
	Long: `Update runs the whole translation cycle in order: discover source files,
extract strings into the locale's .ts file, open Linguist and wait for it to
close, then compile the .qm catalog. Each step's failure stops the run; the
failing tool's exit status is propagated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		return p.Run(cmd.Context())
	},
}
