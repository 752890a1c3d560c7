package main

import "github.com/spf13/cobra"

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the locale's .ts file in Linguist and wait",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		return p.Edit(cmd.Context())
	},
}
