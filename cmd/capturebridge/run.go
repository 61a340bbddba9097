package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Larksa/process-capture-studio/internal/service"
)

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the capture daemon",
		Long: `Starts clipboard, spreadsheet-selection and file-system capture and
streams activity events to the GUI. The GUI may be started before or after;
the daemon reconnects as needed and drops events while it is absent.

Config file search order:
  /etc/process-capture/capture.toml
  $HOME/.config/process-capture/capture.toml
  path supplied via --config

Precedence (lowest → highest): defaults → config file → PCS_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runService(v) },
	}

	f := cmd.Flags()
	f.String("gui-addr", "localhost:9876", "GUI event socket address")
	f.String("token", "", "shared secret (empty = plaintext link)")
	f.StringSlice("watch", nil, "directories to watch (default: ~/Downloads, ~/Desktop, ~/Documents)")
	f.Int("history", 0, "clipboard history entries kept (default 50)")
	f.Duration("selection-interval", time.Second, "spreadsheet selection poll interval")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runService(v *viper.Viper) error {
	setupLogging(v)

	slog.Info("capturebridge starting", "version", Version)

	svc, err := service.New(service.Config{
		WatchPaths:        v.GetStringSlice("watch"),
		GUIAddr:           v.GetString("gui-addr"),
		Token:             v.GetString("token"),
		HistorySize:       v.GetInt("history"),
		SelectionInterval: v.GetDuration("selection-interval"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return svc.Run(ctx)
}
