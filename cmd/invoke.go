package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guttosm/finmetrics/internal/app"
	"github.com/guttosm/finmetrics/internal/logger"
	"github.com/guttosm/finmetrics/internal/service"
)

// errCommandFailed signals that the failure message was already printed.
var errCommandFailed = errors.New("command failed")

func newInvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke <command>",
		Short: "Run a command locally and print its JSON result",
		Example: `  finmetrics invoke get_financial_metrics --ticker AAPL --period FY2023
  finmetrics invoke get_financial_metrics --args '{"ticker":"AAPL","period":"Q4"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := invokeArgs(cmd)
			if err != nil {
				return err
			}

			registry, err := app.NewRegistry(service.NewMetricsService())
			if err != nil {
				return err
			}

			out, err := registry.Invoke(cmd.Context(), args[0], payload)
			if err != nil {
				logger.L().Debug().Err(err).Str("command", args[0]).Msg("invoke failed")
				fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
				return errCommandFailed
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().String("args", "", "raw JSON arguments; overrides --ticker/--period/--metrics")
	cmd.Flags().String("ticker", "", "ticker symbol (required unless --args)")
	cmd.Flags().String("period", "", "reporting period label (required unless --args)")
	cmd.Flags().StringSlice("metrics", nil, "metric names (accepted, not applied)")
	return cmd
}

// invokeArgs builds the raw JSON arguments from the flags.
func invokeArgs(cmd *cobra.Command) (json.RawMessage, error) {
	if raw, _ := cmd.Flags().GetString("args"); raw != "" {
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("--args is not valid JSON")
		}
		return json.RawMessage(raw), nil
	}

	// Unset flags are left out so the command reports them as missing.
	req := make(map[string]any, 3)
	for _, name := range []string{"ticker", "period"} {
		if cmd.Flags().Changed(name) {
			req[name], _ = cmd.Flags().GetString(name)
		}
	}
	if cmd.Flags().Changed("metrics") {
		metrics, _ := cmd.Flags().GetStringSlice("metrics")
		if metrics == nil {
			metrics = []string{}
		}
		req["metrics"] = metrics
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode arguments: %w", err)
	}
	return b, nil
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List registered commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := app.NewRegistry(service.NewMetricsService())
			if err != nil {
				return err
			}
			for _, name := range registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
