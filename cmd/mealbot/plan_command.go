package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mealbot/internal/history"
	"mealbot/internal/planner"
	"mealbot/internal/recipe"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var count int
	var mealType string
	var protein string
	var minRating float64
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Select recipes and publish them to the configured collaborators",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			req := planner.Request{
				Count:         count,
				MealType:      mealType,
				ProteinSource: protein,
				DryRun:        dryRun,
			}
			if cmd.Flags().Changed("min-rating") {
				req.MinRating = &minRating
			}

			opts := []planner.Option{}
			if !dryRun {
				store, err := history.Open(cfg)
				if err != nil {
					return fmt.Errorf("open history: %w", err)
				}
				defer store.Close()
				opts = append(opts, planner.WithHistoryStore(store))
			}

			result, err := planner.New(cfg, logger, opts...).Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Selected Recipes", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Title", "Protein", "Meal Type", "Rating", "Price/Serving"},
				selectionRows(result.Records),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(out, "Matched %d recipes; selected %d.\n\n", result.Matched, len(result.Records))

			if dryRun {
				fmt.Fprintln(out, renderStatusLine("Collaborators", statusInfo, "skipped (dry run)", colorize))
				return nil
			}

			fmt.Fprintln(out, renderStatusLine("Sheet", publishStatus(result.SheetWritten), publishMessage(result.SheetWritten, "updated"), colorize))
			docMessage := "not configured"
			docKind := statusWarn
			if result.DocURL != "" {
				docMessage = result.DocURL
				docKind = statusOK
			}
			fmt.Fprintln(out, renderStatusLine("Document", docKind, docMessage, colorize))
			fmt.Fprintln(out, renderStatusLine("Email", publishStatus(result.EmailTriggered), publishMessage(result.EmailTriggered, "triggered"), colorize))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of recipes to select (default from config)")
	cmd.Flags().StringVar(&mealType, "meal-type", "", "Meal type filter (entree, breakfast, soup, ...; any disables)")
	cmd.Flags().StringVar(&protein, "protein", "", "Protein source filter (chicken, beef, ...; any disables)")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "Minimum rating filter")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Select and print without contacting collaborators")
	return cmd
}

func selectionRows(records []recipe.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rating := "-"
		if value, ok := record.RatingValue(); ok {
			rating = fmt.Sprintf("%.1f", value)
		}
		price := "-"
		if record.EstimatedPrice != nil {
			price = fmt.Sprintf("$%.2f", *record.EstimatedPrice)
		}
		rows = append(rows, []string{
			record.Title,
			displayLabel(string(record.ProteinSource)),
			displayLabel(record.MealType),
			rating,
			price,
		})
	}
	return rows
}

func publishStatus(done bool) statusKind {
	if done {
		return statusOK
	}
	return statusWarn
}

func publishMessage(done bool, verb string) string {
	if done {
		return verb
	}
	return "not configured"
}
