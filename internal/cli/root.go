// Package cli implements chaictl, the maintenance CLI that works directly on
// the configured storage.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/limbo/chai/internal/app"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	Format string // "text" | "json"
}

var ValidFormats = []string{"text", "json"}

// Loader builds the application the commands operate on.
type Loader func() (*app.App, error)

func NewRootCommand(load Loader) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "chaictl",
		Short: "chaictl - maintenance tool for the tips tracker",
		Long:  "Re-evaluates achievements, resets progress and exports tips straight from storage.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewEvaluateCommand(opts, load))
	cmd.AddCommand(NewResetCommand(opts, load))
	cmd.AddCommand(NewExportCommand(opts, load))
	cmd.AddCommand(NewAchievementsCommand(opts, load))
	return cmd
}

// loadEngine builds the app and reads persisted achievements and streaks into the engine.
func loadEngine(ctx context.Context, load Loader) (*app.App, error) {
	a, err := load()
	if err != nil {
		return nil, err
	}
	if err := a.Achievements.Load(ctx); err != nil {
		return nil, err
	}
	return a, nil
}
