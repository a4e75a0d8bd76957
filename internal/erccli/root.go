// Package erccli implements the `erc` command-line tool, structured the
// way platform-lib's pkg/cli builds the `athena` command: one cobra root
// command, one subcommand per verb.
package erccli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/athena/erc-engine/pkg/erc"
	"github.com/athena/erc-engine/pkg/ercconfig"
	"github.com/athena/erc-engine/pkg/erclogger"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root `erc` command.
func NewRootCommand(cfg *ercconfig.Config, log *erclogger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:     "erc",
		Short:   "Electrical Rule Check for ATHENA hardware designs",
		Long:    "erc validates a hardware design snapshot (modules, pins, connections) against a fixed suite of electrical safety rules.",
		Version: "1.0.0",
	}

	root.AddCommand(newCheckCommand(cfg, log))
	root.AddCommand(newScaffoldCommand())
	return root
}

func newCheckCommand(cfg *ercconfig.Config, log *erclogger.Logger) *cobra.Command {
	var (
		format              string
		noStrictVoltage     bool
		maxVoltageTolerance float64
		noPullUps           bool
		noCurrentBudget     bool
		maxTotalCurrentMA   float64
	)

	cmd := &cobra.Command{
		Use:   "check <snapshot.json>",
		Short: "Run the ERC engine against a design snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open snapshot: %w", err)
			}
			defer f.Close()

			data, err := io.ReadAll(f)
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			snap, err := erc.Decode(bytes.NewReader(data))
			if err != nil {
				log.WithError(err).Error("snapshot failed validation")
				return fmt.Errorf("invalid snapshot: %w", err)
			}

			// Precedence: config defaults, then the snapshot's own
			// options block if it has one, then explicit CLI flags.
			// Decode fills in erc.DefaultOptions() when the block is
			// absent, so its presence is read from the raw JSON.
			options := cfg.Options()
			var raw struct {
				Options json.RawMessage `json:"options"`
			}
			if json.Unmarshal(data, &raw) == nil && len(raw.Options) > 0 && string(raw.Options) != "null" {
				options = *snap.Options
			}
			if cmd.Flags().Changed("no-strict-voltage") {
				options.StrictVoltageChecks = !noStrictVoltage
			}
			if cmd.Flags().Changed("max-voltage-tolerance") {
				options.MaxVoltageTolerance = maxVoltageTolerance
			}
			if cmd.Flags().Changed("no-pullups") {
				options.RequirePullUps = !noPullUps
			}
			if cmd.Flags().Changed("no-current-budget") {
				options.CheckCurrentBudget = !noCurrentBudget
			}
			if cmd.Flags().Changed("max-total-current-ma") {
				options.MaxTotalCurrentMA = maxTotalCurrentMA
			}

			start := time.Now()
			report, err := erc.Run(snap.Modules, snap.Connections, options)
			if err != nil {
				log.WithError(err).Error("ERC run failed")
				return fmt.Errorf("erc run failed: %w", err)
			}
			log.WithField("duration", time.Since(start)).Info("erc check complete")

			switch format {
			case "json":
				return printJSON(cmd, report)
			default:
				fmt.Fprint(cmd.OutOrStdout(), erc.Format(report))
			}

			if !report.Passed {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	cmd.Flags().BoolVar(&noStrictVoltage, "no-strict-voltage", false, "disable ERC002 strict voltage tolerance checks")
	cmd.Flags().Float64Var(&maxVoltageTolerance, "max-voltage-tolerance", 10, "ERC002 voltage tolerance percent")
	cmd.Flags().BoolVar(&noPullUps, "no-pullups", false, "disable the I2C pull-up rule")
	cmd.Flags().BoolVar(&noCurrentBudget, "no-current-budget", false, "disable the current budget rules")
	cmd.Flags().Float64Var(&maxTotalCurrentMA, "max-total-current-ma", 1000, "current budget ceiling in mA")

	return cmd
}
