package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tinybt",
	Short: "tinybt is a minimal typed behavior tree engine",
	Long:  `tinybt composes small decision/action nodes into trees that are ticked repeatedly against a shared world state.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
