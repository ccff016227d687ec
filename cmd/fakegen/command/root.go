package command

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/tidepool-org/fakegen/documentor"
	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/factory"
	"github.com/tidepool-org/fakegen/generator"
)

var namedArgRegexp = regexp.MustCompile(`^(\w+)=(.*)$`)

var rootParams = struct {
	LogLevel  string
	Locale    string
	Seed      int64
	Repeat    int
	Separator string
}{}

// Run executes a given function with dependencies supplied by the generator DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the graph
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, factory.Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

var rootCmd = &cobra.Command{
	Use:           "fakegen [formatter] [key=value ...]",
	Short:         "Generates fake data",
	Long:          "Prints the output of a formatter, or the documentation of every formatter when none is given",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Overwrite zap's log level
		if err := os.Setenv("LOG_LEVEL", rootParams.LogLevel); err != nil {
			return err
		}
		if cmd.Flags().Changed("locale") {
			if err := os.Setenv("FAKEGEN_LOCALE", rootParams.Locale); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("seed") {
			if err := os.Setenv("FAKEGEN_SEED", strconv.FormatInt(rootParams.Seed, 10)); err != nil {
				return err
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return Run(func(g *generator.Generator) error {
				return documentor.PrintDoc(cmd.OutOrStdout(), g, "")
			})
		}
		name, formatterArgs := parseArgs(args)
		return Run(func(g *generator.Generator) error {
			return printFake(cmd, g, name, formatterArgs)
		})
	},
}

func printFake(cmd *cobra.Command, g *generator.Generator, name string, args generator.Args) error {
	if rootParams.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be at least 1", errs.Value)
	}
	for i := 0; i < rootParams.Repeat; i++ {
		value, err := g.FormatString(name, args)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(cmd.OutOrStdout(), value, rootParams.Separator); err != nil {
			return err
		}
	}
	return nil
}

// parseArgs splits the command line into the formatter name and its arguments
func parseArgs(args []string) (string, generator.Args) {
	result := generator.Args{}
	for _, arg := range args[1:] {
		if matches := namedArgRegexp.FindStringSubmatch(arg); matches != nil {
			result = result.With(matches[1], matches[2])
			continue
		}
		result.Positional = append(result.Positional, arg)
	}
	return args[0], result
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootParams.LogLevel, "log-level", "v", "error", "Log Level")
	rootCmd.PersistentFlags().StringVarP(&rootParams.Locale, "locale", "l", "en_US", "The locale used for generation")
	rootCmd.PersistentFlags().Int64Var(&rootParams.Seed, "seed", 0, "The seed of the random source, derived from the clock when 0")
	rootCmd.Flags().IntVarP(&rootParams.Repeat, "repeat", "r", 1, "The number of values to generate")
	rootCmd.Flags().StringVarP(&rootParams.Separator, "sep", "s", "\n", "The separator printed after each value")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errs.ExitCode(err))
	}
}
