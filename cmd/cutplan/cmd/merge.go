package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/duplicates"
	"github.com/panelworks/cutplan/pkg/logging"
	"github.com/panelworks/cutplan/pkg/projects"
	"github.com/panelworks/cutplan/pkg/save"
)

var (
	mergeOutPath    string
	mergeDuplicates bool
	mergeProjects   bool
)

// mergeCmd applies every pending merge to a snapshot file in one pass:
// multi-page project batches are collapsed first, then duplicate groups,
// so parts split across pages can still join a duplicate group.
var mergeCmd = &cobra.Command{
	Use:   "merge <cutlist.yaml>",
	Short: "Apply pending project and duplicate merges to a snapshot",
	Long: `Merge loads a part snapshot, collapses the batch provenance of every
project that still spans multiple batches, merges each duplicate group
into its first-entered part with the summed quantity, and writes the
resulting snapshot.

The first part of a duplicate group survives; pick survivors manually
by editing the snapshot when that default is wrong.`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergeOutPath, "out", "", "output file (defaults to stdout)")
	mergeCmd.Flags().BoolVar(&mergeDuplicates, "duplicates", true, "merge duplicate groups")
	mergeCmd.Flags().BoolVar(&mergeProjects, "projects", true, "merge multi-page project batches")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	parts, err := cutlist.LoadFile(args[0])
	if err != nil {
		return err
	}
	logger := logging.Default()

	if mergeProjects {
		for _, g := range projects.Unmerged(parts) {
			plan := projects.Plan(g.ProjectCode, parts)
			if plan.IsNoop() {
				continue
			}
			parts = projects.Apply(parts, plan)
			logger.Info().
				Str("project_code", g.ProjectCode).
				Int("batches", len(g.Batches)).
				Int("parts", len(plan.PartIDs)).
				Msg("Merged project batches")
		}
	}

	if mergeDuplicates {
		for _, g := range duplicates.New().Detect(parts) {
			plan, err := g.Plan(g.Parts[0].Part.ID)
			if err != nil {
				return err
			}
			if err := plan.Validate(parts); err != nil {
				return err
			}
			parts = plan.Apply(parts)
			logger.Info().
				Str("key", g.Key).
				Str("survivor_id", plan.SurvivorID).
				Int("new_qty", plan.NewQty).
				Msg("Merged duplicate group")
		}
	}

	format := save.FormatYAML
	if viper.GetString("output") == "json" {
		format = save.FormatJSON
	}
	if mergeOutPath != "" {
		if err := save.Cutlist(parts, save.WithPath(mergeOutPath), save.WithFormat(format)); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d parts to %s\n", len(parts), mergeOutPath)
		return nil
	}
	return save.Cutlist(parts, save.WithWriter(os.Stdout), save.WithFormat(format))
}
