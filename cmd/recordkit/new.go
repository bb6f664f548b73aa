package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Ddemon26/recordkit/internal/config"
	"github.com/Ddemon26/recordkit/internal/domain/record"
)

// newCmd interactively builds a record against a catalog shape.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Interactively construct a record",
	RunE: func(_ *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		shapeNames := cat.ShapeNames()
		if len(shapeNames) == 0 {
			return fmt.Errorf("catalog declares no shapes")
		}

		var shapeName string
		options := make([]huh.Option[string], len(shapeNames))
		for i, name := range shapeNames {
			options[i] = huh.NewOption(name, name)
		}
		err = huh.NewSelect[string]().
			Title("Record shape").
			Options(options...).
			Value(&shapeName).
			Run()
		if err != nil {
			return err
		}

		shape, _ := cat.Shape(shapeName)
		fields := shape.Fields()
		vals := make([]record.Value, len(fields))
		for i, f := range fields {
			var input string
			err = huh.NewInput().
				Title(fmt.Sprintf("%s (%s)", f.Name, f.Kind)).
				Validate(func(s string) error {
					_, err := config.ParseScalar(f.Kind, s)
					return err
				}).
				Value(&input).
				Run()
			if err != nil {
				return err
			}
			vals[i], err = config.ParseScalar(f.Kind, input)
			if err != nil {
				return err
			}
		}

		rec, err := record.New(shape, vals...)
		if err != nil {
			return err
		}
		return printRecords(rec)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
