package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emergentsolutions/leaflet"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of leaflet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("leaflet version %s\n", leaflet.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
