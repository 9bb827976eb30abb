package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cerb/internal/stats"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show COVID-19 case statistics",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "global",
			Short: "Worldwide totals",
			Args:  cobra.NoArgs,
			RunE: statsRunE(func(ctx context.Context, c *stats.Client, out io.Writer, _ []string) error {
				global, err := c.GlobalSummary(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "Global")
				printCounts(out, counts{
					global.NewConfirmed, global.TotalConfirmed,
					global.NewDeaths, global.TotalDeaths,
					global.NewRecovered, global.TotalRecovered,
				})
				return nil
			}),
		},
		&cobra.Command{
			Use:   "countries",
			Short: "List countries and their slugs",
			Args:  cobra.NoArgs,
			RunE: statsRunE(func(ctx context.Context, c *stats.Client, out io.Writer, _ []string) error {
				countries, err := c.Countries(ctx)
				if err != nil {
					return err
				}
				for _, country := range countries {
					fmt.Fprintf(out, "%-40s %s\n", country.Country, country.Slug)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "country <slug>",
			Short: "Totals for one country (see 'cerb stats countries' for slugs)",
			Args:  cobra.ExactArgs(1),
			RunE: statsRunE(func(ctx context.Context, c *stats.Client, out io.Writer, args []string) error {
				country, err := c.CountrySummary(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (as of %s)\n", country.Country, country.Date.Format("2006-01-02"))
				printCounts(out, counts{
					country.NewConfirmed, country.TotalConfirmed,
					country.NewDeaths, country.TotalDeaths,
					country.NewRecovered, country.TotalRecovered,
				})
				return nil
			}),
		},
	)
	return cmd
}

func statsRunE(fn func(ctx context.Context, c *stats.Client, out io.Writer, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			client, err := a.statsClient(ctx)
			if err != nil {
				return err
			}
			if err := fn(ctx, client, cmd.OutOrStdout(), args); err != nil {
				if stats.IsRetryable(err) {
					return fmt.Errorf("%w (temporary, try again later)", err)
				}
				return err
			}
			return nil
		})
	}
}

type counts struct {
	newConfirmed, totalConfirmed int64
	newDeaths, totalDeaths       int64
	newRecovered, totalRecovered int64
}

func printCounts(out io.Writer, c counts) {
	rows := []struct {
		label       string
		recent, all int64
	}{
		{"Confirmed", c.newConfirmed, c.totalConfirmed},
		{"Deaths", c.newDeaths, c.totalDeaths},
		{"Recovered", c.newRecovered, c.totalRecovered},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "  %-10s %15s total  (+%s new)\n", r.label, humanize.Comma(r.all), humanize.Comma(r.recent))
	}
}
