package erccli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/athena/erc-engine/pkg/erc"
	"github.com/spf13/cobra"
)

func printJSON(cmd *cobra.Command, report *erc.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
