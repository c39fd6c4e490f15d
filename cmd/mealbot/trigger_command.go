package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mealbot/internal/services/appsscript"
)

func newTestTriggerCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-trigger",
		Short: "Fire the email trigger once to verify the Apps Script wiring",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			if strings.TrimSpace(cfg.Email.TriggerURL) == "" {
				fmt.Fprintln(out, renderStatusLine("Email trigger", statusWarn, "trigger_url not configured", colorize))
				return nil
			}

			if err := appsscript.NewService(cfg).TriggerEmail(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, renderStatusLine("Email trigger", statusOK, "fired", colorize))
			return nil
		},
	}
}
