package main

import (
	"fmt"

	"github.com/aretw0/tinybt"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tinybt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tinybt version %s\n", tinybt.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
