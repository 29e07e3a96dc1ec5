package main

import (
	"context"
	"log/slog"
	"os"

	"moodmap/config"
	"moodmap/internal/delivery"
	"moodmap/internal/delivery/api"
	"moodmap/internal/delivery/api/router/handler"
	"moodmap/internal/domain/service"
	"moodmap/internal/infra/cache"
	logs "moodmap/internal/infra/log"
	"moodmap/internal/infra/mapsink"
	"moodmap/internal/infra/persistence/postgres"
	"moodmap/internal/infra/places/google"
	"moodmap/internal/infra/qrcode"
	"moodmap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewResponseCache,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewGeocodeRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			google.NewClient,
			mapsink.NewGeoJSONRenderer,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlacesService,
			impl.NewDiscoveryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPlacesHandler,
			handler.NewGeocodeHandler,
			handler.NewCatalogHandler,
			handler.NewDiscoveryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
