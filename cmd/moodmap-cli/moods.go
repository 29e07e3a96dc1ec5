package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"moodmap/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newMoodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List the mood catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderMoods(cmd.OutOrStdout(), entity.Moods())
		},
	}
}

func renderMoods(w io.Writer, moods []entity.Mood) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tSEARCHES\tPRICE\tDESCRIPTION")
	for _, mood := range moods {
		price := "-"
		if mood.PriceRange != nil {
			price = fmt.Sprintf("%d-%d", mood.PriceRange.Min, mood.PriceRange.Max)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			mood.ID,
			mood.Label,
			strings.Join(append([]string{mood.PrimaryType()}, mood.Keywords...), ", "),
			price,
			mood.Description,
		)
	}

	return errors.WithStack(tw.Flush())
}
