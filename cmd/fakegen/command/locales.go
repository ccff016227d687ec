package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/fakegen/factory"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List locales",
	Long:  "The locales command lists the locales generators can be created for",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(registry *factory.Registry) error {
			for _, locale := range registry.List() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), locale); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}
