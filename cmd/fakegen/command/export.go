package command

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/fakegen/export"
	"github.com/tidepool-org/fakegen/generator"
)

var exportParams = struct {
	Format string
	Output string
	Rows   int
}{}

var exportCmd = &cobra.Command{
	Use:   "export field...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Export rows of fake data",
	Long:  "The export command writes rows of fake data to a csv or xlsx file. Fields are formatter names or templates such as {{first_name}}.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(g *generator.Generator, logger *zap.SugaredLogger) error {
			return exportRows(cmd.OutOrStdout(), g, logger, args)
		})
	},
}

func exportRows(stdout io.Writer, g *generator.Generator, logger *zap.SugaredLogger, fields []string) (err error) {
	if err := export.ValidateFormat(exportParams.Format); err != nil {
		return err
	}
	if err := export.Validate(g, fields, exportParams.Rows); err != nil {
		return err
	}

	out := stdout
	if exportParams.Output != "" && exportParams.Output != "-" {
		file, err := os.Create(exportParams.Output)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
		}()
		out = file
	}

	w, err := export.NewWriter(exportParams.Format, out)
	if err != nil {
		return err
	}
	if err := export.Rows(g, fields, exportParams.Rows, w); err != nil {
		return err
	}

	logger.Infow("exported fake data", "rows", exportParams.Rows, "format", exportParams.Format, "output", exportParams.Output)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportParams.Format, "format", "f", export.FormatCSV, "The output format, csv or xlsx")
	exportCmd.Flags().StringVarP(&exportParams.Output, "output", "o", "-", "The output file, - for standard output")
	exportCmd.Flags().IntVarP(&exportParams.Rows, "rows", "n", 100, "The number of rows to export")

	rootCmd.AddCommand(exportCmd)
}
