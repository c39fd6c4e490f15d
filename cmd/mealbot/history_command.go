package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mealbot/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent planning runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Meal Type", "Protein", "Selected", "Sheet", "Email", "Status"},
				historyRows(runs),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to show")
	return cmd
}

func historyRows(runs []history.Run) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		status := run.Status
		if run.Status == history.StatusFailed && run.ErrorMessage != "" {
			message := run.ErrorMessage
			if len(message) > 60 {
				message = message[:57] + "..."
			}
			status = "failed: " + message
		}
		protein := run.ProteinSource
		if strings.TrimSpace(protein) == "" {
			protein = "any"
		}
		rows = append(rows, []string{
			run.StartedAt.Local().Format(time.DateTime),
			displayLabel(run.MealType),
			displayLabel(protein),
			fmt.Sprintf("%d/%d", run.Selected, run.Requested),
			yesNo(run.SheetWritten),
			yesNo(run.EmailTriggered),
			status,
		})
	}
	return rows
}
