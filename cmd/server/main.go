// Package main is the entry point for the companion API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "companion-api",
	Short: "Tabletop companion backend",
	Long:  `companion-api serves the tabletop companion's profiles, abilities, missions, and realtime battles over a websocket gateway.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
