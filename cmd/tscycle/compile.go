package main

import "github.com/spf13/cobra"

var compileAll bool

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the .ts file into a binary .qm catalog",
	Long: `Compile regenerates the binary catalog from the translation source file
with lrelease. With --all, every .ts under the translations dir is compiled;
zero .ts files is a no-op, not an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		if compileAll {
			return p.CompileAll(cmd.Context())
		}
		return p.Compile(cmd.Context())
	},
}

func init() {
	compileCmd.Flags().BoolVar(&compileAll, "all", false, "compile every .ts in the translations dir")
}
