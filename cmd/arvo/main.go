// Command arvo is the Arvo CLI: arvo scan <path> runs a scan directly or
// against a running daemon; arvo daemon run|start|stop manages the
// reference daemon.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arvoscan/arvo/cmd"
	cmdDaemon "github.com/arvoscan/arvo/cmd/arvo/daemon"
	cmdScan "github.com/arvoscan/arvo/cmd/arvo/scan"
)

var rootCommand = &cobra.Command{
	Use:           "arvo",
	Short:         "Arvo is an antivirus scan engine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	cmd.HandleTerminalCompatibility()

	rootCommand.AddCommand(
		cmdScan.Command,
		cmdDaemon.Command,
	)

	if err := rootCommand.Execute(); err != nil {
		cmd.Error(err)
		os.Exit(1)
	}
}
