package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of compose",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("compose version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
