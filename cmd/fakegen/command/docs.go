package command

import (
	"github.com/spf13/cobra"

	"github.com/tidepool-org/fakegen/documentor"
	"github.com/tidepool-org/fakegen/generator"
)

var docsCmd = &cobra.Command{
	Use:   "docs [provider|formatter]",
	Short: "Document formatters",
	Long:  "The docs command prints every formatter with its default arguments and an example value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) > 0 {
			filter = args[0]
		}
		return Run(func(g *generator.Generator) error {
			return documentor.PrintDoc(cmd.OutOrStdout(), g, filter)
		})
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
