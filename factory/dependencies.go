package factory

import (
	"go.uber.org/fx"

	"github.com/tidepool-org/fakegen/clock"
	"github.com/tidepool-org/fakegen/config"
	"github.com/tidepool-org/fakegen/locales"
	"github.com/tidepool-org/fakegen/logger"
)

// Dependencies returns the options needed to build a configured generator
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			clock.New,
			locales.NewStore,
			NewRegistry,
			NewFactory,
			NewGenerator,
		),
	}
}
