// Command erc-cli is the command-line entry point for running the ERC
// engine against a design snapshot file. See internal/erccli for the
// command tree.
package main

import (
	"os"

	"github.com/athena/erc-engine/internal/erccli"
	"github.com/athena/erc-engine/pkg/ercconfig"
	"github.com/athena/erc-engine/pkg/erclogger"
)

func main() {
	cfg, err := ercconfig.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := erclogger.New(cfg.LogLevel, cfg.ServiceName)

	root := erccli.NewRootCommand(cfg, log)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
