package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/emergentsolutions/leaflet"
)

var (
	verbose  bool
	failFast bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "leaflet [file.json]",
	Short: "Split a JSON array of objects into per-record markdown files",
	Long: `Leaflet reads a JSON document containing an array of objects and writes
one markdown file per object, each holding the object's fields as a
frontmatter header.

With a file argument only that file is processed. Without arguments every
*.json file in the current directory is processed, each independently.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		if len(args) == 1 {
			summary, err := leaflet.SplitFile(ctx, args[0], leaflet.WithLogger(slog.Default()))
			if err != nil {
				fatal("Failed to split file", err)
			}
			printSummary(summary)
			return
		}

		report, err := leaflet.SplitDir(ctx,
			leaflet.WithLogger(slog.Default()),
			leaflet.WithFailFast(failFast),
		)
		if err != nil {
			fatal("Failed to split directory", err)
		}

		for _, summary := range report.Summaries {
			printSummary(summary)
		}
		if report.Failed() {
			for _, failure := range report.Failures {
				fmt.Fprintf(os.Stderr, "Error: %v\n", failure.Err)
			}
			os.Exit(1)
		}
	},
}

func printSummary(s leaflet.Summary) {
	fmt.Printf("Processed %d entries from %s into %s\n", s.Count, s.Input, s.OutputDir)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first failing file in directory mode")
}
