package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"mealbot/internal/curation"
	"mealbot/internal/dataset"
	"mealbot/internal/recipe"
)

func newCurateCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curate [raw-dataset]",
		Short: "Rebuild the curated dataset from the raw recipe corpus",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			rawPath := cfg.Paths.RawDataset
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				rawPath = args[0]
			}

			raw, err := dataset.LoadRaw(rawPath)
			if err != nil {
				return err
			}
			logger.Info("raw dataset loaded", "records", len(raw))

			curated := curation.Curate(raw, curation.Thresholds{
				MinProtein:     cfg.Curation.MinProtein,
				MaxProtein:     cfg.Curation.MaxProtein,
				MinRating:      cfg.Curation.MinRating,
				MaxIngredients: cfg.Curation.MaxIngredients,
				MinIngredients: cfg.Curation.MinIngredients,
			})
			if err := dataset.Save(cfg.Paths.CuratedDataset, curated); err != nil {
				return err
			}
			logger.Info("curated dataset written",
				"path", cfg.Paths.CuratedDataset,
				"records", len(curated),
			)

			printCurationSummary(cmd, curation.Summarize(curated), len(raw))
			return nil
		},
	}
	return cmd
}

func printCurationSummary(cmd *cobra.Command, summary curation.Summary, rawTotal int) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Curation Summary", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "Kept %d of %d raw recipes.\n", summary.Total, rawTotal)
	if summary.Total == 0 {
		return
	}
	fmt.Fprintf(out, "Average protein: %.1fg  Average rating: %.2f\n\n", summary.AvgProtein, summary.AvgRating)

	fmt.Fprintln(out, renderTable(
		[]string{"Protein Source", "Count"},
		proteinSourceRows(summary.ByProteinSource),
		[]columnAlignment{alignLeft, alignRight},
	))
	fmt.Fprintln(out, renderTable(
		[]string{"Meal Type", "Count"},
		stringCountRows(summary.ByMealType),
		[]columnAlignment{alignLeft, alignRight},
	))
	fmt.Fprintln(out, renderTable(
		[]string{"Difficulty", "Count"},
		difficultyRows(summary.ByDifficulty),
		[]columnAlignment{alignLeft, alignRight},
	))
}

func proteinSourceRows(counts map[recipe.ProteinSource]int) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, source := range recipe.ProteinSources() {
		if count, ok := counts[source]; ok {
			rows = append(rows, []string{displayLabel(string(source)), fmt.Sprintf("%d", count)})
		}
	}
	return rows
}

func stringCountRows(counts map[string]int) [][]string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{displayLabel(key), fmt.Sprintf("%d", counts[key])})
	}
	return rows
}

func difficultyRows(counts map[recipe.Difficulty]int) [][]string {
	order := []recipe.Difficulty{recipe.DifficultyEasy, recipe.DifficultyMedium, recipe.DifficultyInvolved}
	rows := make([][]string, 0, len(order))
	for _, difficulty := range order {
		if count, ok := counts[difficulty]; ok {
			rows = append(rows, []string{displayLabel(string(difficulty)), fmt.Sprintf("%d", count)})
		}
	}
	return rows
}
