package erccli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/athena/erc-engine/pkg/erc"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newScaffoldCommand builds a blank snapshot from flags instead of a file,
// minting synthetic module/pin ids with uuid.New() the way the CLI's
// analogues in platform-lib mint device/template ids. It is meant as a
// starting point for `erc check`, not a replacement for a hand-authored
// snapshot.
func newScaffoldCommand() *cobra.Command {
	var (
		moduleNames []string
		pinSpecs    []string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate a blank design snapshot with synthetic ids",
		Long: "scaffold builds a minimal snapshot.json from --module and --pin flags, " +
			"assigning each module and pin a fresh uuid so the result can be hand-edited " +
			"and fed straight into `erc check`.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(moduleNames) == 0 {
				return fmt.Errorf("at least one --module is required")
			}

			pins, err := parsePinSpecs(pinSpecs)
			if err != nil {
				return err
			}

			modules := make([]erc.Module, 0, len(moduleNames))
			for _, name := range moduleNames {
				modules = append(modules, erc.Module{
					ID:   uuid.New().String(),
					Name: name,
					Pins: clonePins(pins),
				})
			}

			snap := erc.Snapshot{Modules: modules, Connections: []erc.Connection{}}
			encoded, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}

			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}
			return writeFile(out, encoded)
		},
	}

	cmd.Flags().StringArrayVar(&moduleNames, "module", nil, "name of a module to include (repeatable)")
	cmd.Flags().StringArrayVar(&pinSpecs, "pin", nil, "pin to add to every module, as name:type (repeatable)")
	cmd.Flags().StringVar(&out, "out", "", "file to write the snapshot to (default: stdout)")

	return cmd
}

// parsePinSpecs turns "name:type" flag values into Pins, each minted a
// fresh uuid, enabled by default.
func parsePinSpecs(specs []string) ([]erc.Pin, error) {
	pins := make([]erc.Pin, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid --pin %q, expected name:type", spec)
		}
		pins = append(pins, erc.Pin{
			ID:      uuid.New().String(),
			Name:    parts[0],
			Type:    erc.PinType(parts[1]),
			Enabled: true,
		})
	}
	return pins, nil
}

func clonePins(pins []erc.Pin) []erc.Pin {
	out := make([]erc.Pin, len(pins))
	for i, p := range pins {
		cloned := p
		cloned.ID = uuid.New().String()
		out[i] = cloned
	}
	return out
}
