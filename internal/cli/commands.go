package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/limbo/chai/internal/service"
	"github.com/limbo/chai/pkg/entity"
	"github.com/spf13/cobra"
)

type EvaluateResult struct {
	Tips         int `json:"tips"`
	Achievements int `json:"achievements"`
	Unlocked     int `json:"unlocked"`
}

func NewEvaluateCommand(opts *RootOptions, load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Re-run the achievements engine over every stored tip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadEngine(ctx, load)
			if err != nil {
				return err
			}
			if err := a.Tips.Reevaluate(ctx); err != nil {
				return err
			}
			tips, err := a.Tips.List(ctx)
			if err != nil {
				return err
			}
			result := EvaluateResult{
				Tips:         len(tips),
				Achievements: len(a.Achievements.Achievements()),
				Unlocked:     len(a.Achievements.GetUnlocked()),
			}
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "evaluated %d tips: %d of %d achievements unlocked\n",
				result.Tips, result.Unlocked, result.Achievements)
			return err
		},
	}
}

func NewResetCommand(opts *RootOptions, load Loader) *cobra.Command {
	var confirmed bool
	cmd := &cobra.Command{
		Use:   "reset-achievements",
		Short: "Wipe achievement progress and streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to reset without --yes")
			}
			ctx := cmd.Context()
			a, err := loadEngine(ctx, load)
			if err != nil {
				return err
			}
			if err := a.Achievements.ResetAll(ctx); err != nil {
				return err
			}
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]bool{"reset": true})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "achievements and streaks reset")
			return err
		},
	}
	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm the reset")
	return cmd
}

func NewExportCommand(_ *RootOptions, load Loader) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every tip as CSV, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			tips, err := a.Tips.List(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return service.WriteTipsCSV(cmd.OutOrStdout(), tips)
			}
			f, err := os.Create(out)
			if err != nil {
				return errors.New("creating export file error: " + err.Error())
			}
			if err := service.WriteTipsCSV(f, tips); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "exported %d tips to %s\n", len(tips), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout when empty")
	return cmd
}

func NewAchievementsCommand(opts *RootOptions, load Loader) *cobra.Command {
	var unlockedOnly bool
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "List achievements with their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadEngine(cmd.Context(), load)
			if err != nil {
				return err
			}
			list := a.Achievements.Achievements()
			if unlockedOnly {
				list = a.Achievements.GetUnlocked()
			}
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			return writeAchievementsTable(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().BoolVar(&unlockedOnly, "unlocked", false, "only unlocked achievements")
	return cmd
}

func writeAchievementsTable(w io.Writer, list []entity.Achievement) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRARITY\tPROGRESS\tUNLOCKED")
	for _, a := range list {
		unlocked := "-"
		if !a.UnlockedAt.IsZero() {
			unlocked = a.UnlockedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%g/%g\t%s\n", a.ID, a.Rarity, a.Progress, a.MaxProgress, unlocked)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := sonic.ConfigDefault.NewEncoder(w)
	return enc.Encode(v)
}
