package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emergentsolutions/leaflet"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file.json]",
	Short: "Re-split inputs whenever they change",
	Long: `Watch splits the given JSON file (or every *.json file in the current
directory) and then reprocesses an input each time it is written to,
until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err := leaflet.Watch(ctx, path,
			leaflet.WithLogger(slog.Default()),
			leaflet.WithDebounce(watchDebounce),
		)
		if err != nil && !errors.Is(err, context.Canceled) {
			fatal("Watch failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Quiet period before a changed file is reprocessed")
}
