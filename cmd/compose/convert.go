package main

import (
	"fmt"

	"github.com/aretw0/compose"
	"github.com/aretw0/compose/pkg/adapters/fs"
	"github.com/aretw0/compose/pkg/core"
	"github.com/spf13/cobra"
)

var (
	convertOut string
)

var convertCmd = &cobra.Command{
	Use:   "convert [path]",
	Short: "Convert a document or folder to a single document",
	Long: `Decode the document at path with the codec matching its extension, or the
marker document of the folder at path, and print it in --format.
The extension may be omitted for .json and .yaml files.

A folder is read as a map from its marker document alone: sibling files
and subdirectories are not merged into the output. An empty document
prints as null.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := convert(args[0])
		if err != nil {
			fatal("Error converting", err)
		}

		if convertOut == "" {
			fmt.Print(out)
			return
		}
		if err := (fs.OS{}).WriteFile(convertOut, []byte(out), 0644); err != nil {
			fatal("Error writing output", err)
		}
	},
}

func convert(path string) (string, error) {
	opts, err := buildOptions()
	if err != nil {
		return "", err
	}

	v, err := decode(path, opts)
	if err != nil {
		return "", err
	}
	return compose.Serialize(v, opts...)
}

// decode loads path without a target type: documents become whatever
// their codec produces, folders a map read from their marker document.
func decode(path string, opts []compose.Option) (any, error) {
	if (fs.OS{}).Stat(path) == core.KindDirectory {
		m, err := compose.Load[map[string]any](path, opts...)
		if err != nil {
			return nil, err
		}
		return *m, nil
	}

	v, err := compose.LoadExt[any](path, opts...)
	if err != nil {
		return nil, err
	}
	return *v, nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Write to this file atomically instead of stdout")
}
