package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cerb/internal/platform/config"
	"cerb/pkg/platform/sentinel"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cerb",
		Short: "Check eligibility for the Canada Emergency Response Benefit",
		Long: `cerb asks five questions (name, age, income, country, student status)
and tells you whether you qualify for CERB. Post-secondary students below the
income threshold are also checked for British Columbia's emergency support.

Configuration comes from CERB_* environment variables or the YAML file named
by CERB_CONFIG.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				err := a.runQuestionnaire(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
				switch {
				case errors.Is(err, sentinel.ErrInputClosed):
					return errors.New("input closed before the questionnaire was finished")
				case errors.Is(err, context.Canceled):
					return errors.New("interrupted")
				}
				return err
			})
		},
	}
	cmd.AddCommand(statsCmd())
	return cmd
}

// withApp loads configuration, builds the app for one command and tears it
// down afterwards.
func withApp(ctx context.Context, fn func(context.Context, *app) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a)
}
