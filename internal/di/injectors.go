//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"sld/internal"
	"sld/internal/archive"
	"sld/internal/controllers"
	"sld/internal/notify"
	"sld/internal/providers"
	"sld/internal/scheduling"
	"sld/internal/services"
	"sld/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewStoreProvider,

		archive.NewZstdCompressor,
		archive.NewColdArchiver,
		scheduling.NewScheduler,
		notify.NewAnnouncer,
		notify.NewNotifier,
		services.NewRankedStoreService,
		services.NewResetService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
