package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"moodmap/internal/domain/entity"
	"moodmap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const nameColumnWidth = 32

type discoverOptions struct {
	lat         float64
	lng         float64
	mood        string
	sortBy      string
	maxDistance float64
	minRating   float64
	openNow     bool
}

func newDiscoverCmd() *cobra.Command {
	defaults := entity.DefaultFilterState()
	opts := &discoverOptions{}

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List places around a location for a mood",
		Example: `  moodmap-cli discover --lat 37.7749 --lng -122.4194 --mood work
  moodmap-cli discover --lat 37.7749 --lng -122.4194 --mood quick-bite --sort rating --open-now`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := opts.request()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return withDiscovery(ctx, func(discoveryUC usecase.DiscoveryUsecase) error {
				return runDiscover(ctx, cmd.OutOrStdout(), discoveryUC, req)
			})
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.lat, "lat", 0, "Latitude of the search origin")
	flags.Float64Var(&opts.lng, "lng", 0, "Longitude of the search origin")
	flags.StringVar(&opts.mood, "mood", "", "Mood id (work, date, quick-bite, budget)")
	flags.StringVar(&opts.sortBy, "sort", string(defaults.SortBy), "Sort key (distance, rating, reviews)")
	flags.Float64Var(&opts.maxDistance, "max-distance", defaults.MaxDistance, "Maximum distance in meters")
	flags.Float64Var(&opts.minRating, "min-rating", defaults.MinRating, "Minimum rating, 0 disables")
	flags.BoolVar(&opts.openNow, "open-now", defaults.OpenNow, "Only places open now")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	_ = cmd.MarkFlagRequired("mood")

	return cmd
}

func (o *discoverOptions) request() (usecase.DiscoverRequest, error) {
	coords := entity.Coordinates{Lat: o.lat, Lng: o.lng}
	if !coords.Valid() {
		return usecase.DiscoverRequest{}, errors.Errorf("invalid coordinates %.6f,%.6f", o.lat, o.lng)
	}
	mood := entity.MoodID(o.mood)
	if !mood.IsValid() {
		return usecase.DiscoverRequest{}, errors.Errorf("unknown mood %q", o.mood)
	}
	sortBy := entity.SortBy(o.sortBy)
	if !sortBy.IsValid() {
		return usecase.DiscoverRequest{}, errors.Errorf("unknown sort key %q", o.sortBy)
	}
	if o.maxDistance < 0 || o.minRating < 0 || o.minRating > 5 {
		return usecase.DiscoverRequest{}, errors.New("max-distance must be >= 0 and min-rating within 0..5")
	}

	return usecase.DiscoverRequest{
		Coordinates: coords,
		Mood:        mood,
		Filters: entity.FilterState{
			SortBy:      sortBy,
			MaxDistance: o.maxDistance,
			MinRating:   o.minRating,
			OpenNow:     o.openNow,
		},
	}, nil
}

func runDiscover(ctx context.Context, w io.Writer, discoveryUC usecase.DiscoveryUsecase, req usecase.DiscoverRequest) error {
	result, err := discoveryUC.Discover(ctx, req)
	if err != nil {
		return errors.Wrap(err, "discover")
	}

	return renderPlaces(w, result)
}

// renderPlaces prints the visible places as an aligned table followed by a count line.
func renderPlaces(w io.Writer, result *usecase.DiscoverResult) error {
	if len(result.Places) == 0 {
		_, err := fmt.Fprintf(w, "No places match the current filters (%d found before filtering).\n", result.Total)

		return errors.WithStack(err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tRATING\tREVIEWS\tPRICE\tDISTANCE\tOPEN")
	for i, place := range result.Places {
		open := "-"
		if place.OpeningHours != nil {
			open = strconv.FormatBool(place.OpeningHours.OpenNow)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			entity.TruncateText(place.Name, nameColumnWidth),
			entity.FormatRating(place.Rating),
			entity.FormatReviewCount(place.UserRatingsTotal),
			orDash(entity.FormatPriceLevel(place.PriceLevel)),
			orDash(entity.FormatDistance(place.Distance)),
			open,
		)
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	_, err := fmt.Fprintf(w, "\nShowing %d of %d places, sorted by %s.\n", len(result.Places), result.Total, result.Filters.SortBy)

	return errors.WithStack(err)
}

func orDash(cell string) string {
	if cell == "" {
		return "-"
	}

	return cell
}
