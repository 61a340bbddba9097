// capturebridge: desktop activity capture service for Process Capture Studio.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "capturebridge",
		Short: "Desktop activity capture for Process Capture Studio",
		Long: `capturebridge observes file-system changes, clipboard copies and
spreadsheet selections, correlates cross-application pastes, and streams
structured activity events to the Process Capture Studio GUI over a local
socket.

Run "capturebridge run" alongside the GUI. Use "capturebridge status" to
inspect a running daemon.

Config file search order (first found wins):
  /etc/process-capture/capture.toml
  $HOME/.config/process-capture/capture.toml
  path supplied via --config

All flags can be set via PCS_<FLAG> env vars or config-file keys.
See "capturebridge run --help" for the full flag reference.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("capturebridge %s\n", Version)
		},
	}
}
