package main

import (
	"fmt"

	"github.com/aretw0/compose"
	"github.com/spf13/cobra"
)

var findRootCmd = &cobra.Command{
	Use:   "root [dir]",
	Short: "Find the enclosing folder that holds a marker document",
	Long:  `Walk upwards from dir (default: the working directory) to the nearest folder containing <object-name>.json, <object-name>.yaml or a marker in another registered format.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		start := "."
		if len(args) == 1 {
			start = args[0]
		}

		opts, err := buildOptions()
		if err != nil {
			fatal("Error", err)
		}
		root, err := compose.FindRoot(start, opts...)
		if err != nil {
			fatal("Error finding root", err)
		}
		fmt.Println(root)
	},
}

func init() {
	rootCmd.AddCommand(findRootCmd)
}
