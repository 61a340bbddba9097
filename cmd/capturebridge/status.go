package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Larksa/process-capture-studio/internal/ipc"
	"github.com/Larksa/process-capture-studio/internal/service"
	"github.com/Larksa/process-capture-studio/internal/wire"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of a running capture daemon",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	conn, err := ipc.Dial()
	if err != nil {
		return fmt.Errorf("no capture daemon running (%s): %w", ipc.SocketPath(), err)
	}
	defer conn.Close()

	wc := wire.New(conn, nil)
	if err := wc.WriteJSON(service.ControlRequest{Type: service.ControlStatus}); err != nil {
		return fmt.Errorf("status request: %w", err)
	}

	var st service.Status
	if err := wc.ReadJSON(&st); err != nil {
		return fmt.Errorf("status response: %w", err)
	}

	gui := "disconnected"
	if st.GUIConnected {
		gui = "connected"
	}
	fmt.Printf("platform:          %s\n", st.Platform)
	fmt.Printf("clipboard backend: %s\n", st.Clipboard)
	fmt.Printf("gui:               %s (%s)\n", gui, st.GUIAddr)
	fmt.Printf("events dropped:    %d\n", st.EventsDropped)
	fmt.Printf("ledger entries:    %d\n", st.LedgerEntries)
	fmt.Printf("queue depth:       %d\n", st.QueueDepth)
	fmt.Printf("watching:          %s\n", strings.Join(st.WatchPaths, ", "))
	return nil
}
