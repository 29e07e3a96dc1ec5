package main

import (
	"context"
	"fmt"
	"os"

	"moodmap/config"
	"moodmap/internal/domain/lifecycle"
	"moodmap/internal/infra/cache"
	logs "moodmap/internal/infra/log"
	"moodmap/internal/infra/persistence/postgres"
	"moodmap/internal/infra/places/google"
	"moodmap/internal/usecase"
	"moodmap/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var rootCmd = &cobra.Command{
	Use:           "moodmap-cli",
	Short:         "Find nearby places that fit a mood",
	Long:          `moodmap-cli runs the moodmap discovery pipeline against the configured places upstream and prints the results as a table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newDiscoverCmd(), newMoodsCmd())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withDiscovery starts the usecase graph, runs fn and stops the graph again.
func withDiscovery(ctx context.Context, fn func(discoveryUC usecase.DiscoveryUsecase) error) error {
	var discoveryUC usecase.DiscoveryUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.NewStderr,
			postgres.New,
			postgres.NewGeocodeRepository,
			cache.NewResponseCache,
			google.NewClient,
			impl.NewPlacesService,
			impl.NewDiscoveryService,
		),
		fx.Populate(&discoveryUC),
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	runErr := fn(discoveryUC)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop")
	}

	return runErr
}
