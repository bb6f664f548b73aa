package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ddemon26/recordkit/internal/config"
)

// validateCmd checks a catalog file against the schema and version gate.
var validateCmd = &cobra.Command{
	Use:   "validate <catalog.yaml>",
	Short: "Validate a catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cat, err := config.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s is valid: version %s, %d shapes, %d fixtures\n",
			args[0], cat.Version, len(cat.ShapeNames()), len(cat.FixtureNames()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
