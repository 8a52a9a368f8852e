package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aretw0/compose"
	"github.com/spf13/cobra"
)

var codecsCmd = &cobra.Command{
	Use:   "codecs",
	Short: "List the registered document formats",
	Long:  `List extensions in the order marker documents are tried. When several markers exist for the same stem, the last one listed wins.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := buildOptions()
		if err != nil {
			fatal("Error", err)
		}
		b, err := compose.NewBuilder(opts...)
		if err != nil {
			fatal("Error", err)
		}

		registry := b.Registry()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "EXT\tKIND\tCODEC")
		for _, ext := range registry.MarkerExtensions() {
			kind := "custom"
			if _, ok := registry.Builtin(ext); ok {
				kind = "builtin"
			}
			c, _ := registry.Resolve(ext)
			fmt.Fprintf(w, "%s\t%s\t%T\n", ext, kind, c)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(codecsCmd)
}
