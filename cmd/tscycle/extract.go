package main

import "github.com/spf13/cobra"

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Discover source files and extract strings into the .ts file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		files, err := p.Discover()
		if err != nil {
			return err
		}
		return p.Extract(cmd.Context(), files)
	},
}
