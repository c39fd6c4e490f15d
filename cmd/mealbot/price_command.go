package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mealbot/internal/dataset"
	"mealbot/internal/pricing"
)

func newPriceCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Annotate the curated dataset with estimated price per serving",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			records, err := dataset.Load(cfg.Paths.CuratedDataset)
			if err != nil {
				return err
			}

			priced, skipped := pricing.Annotate(records)
			if priced > 0 {
				if err := dataset.Save(cfg.Paths.CuratedDataset, records); err != nil {
					return err
				}
			}
			logger.Info("pricing pass complete", "priced", priced, "skipped", skipped)

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Priced", statusOK, fmt.Sprintf("%d recipes", priced), colorize))
			if skipped > 0 {
				fmt.Fprintln(out, renderStatusLine("Skipped", statusInfo, fmt.Sprintf("%d already priced", skipped), colorize))
			}
			return nil
		},
	}
	return cmd
}
