package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

var dumpCmd = &cobra.Command{
	Use:   "dump [path]",
	Short: "Print the decoded Go value of a document",
	Long:  `Decode path like convert does and print the resulting Go value with its types, which shows how each codec maps a document.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := buildOptions()
		if err != nil {
			fatal("Error", err)
		}

		v, err := decode(args[0], opts)
		if err != nil {
			fatal("Error decoding", err)
		}
		dumpConfig.Fdump(os.Stdout, v)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
