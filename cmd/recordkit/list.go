package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Ddemon26/recordkit/internal/domain/record"
	"github.com/Ddemon26/recordkit/internal/filter"
)

var (
	listShape  string
	listFilter string
)

// listCmd prints catalog fixtures, optionally narrowed by shape and a
// filter expression over field values.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog fixture records",
	Example: `  recordkit list
  recordkit list --shape Item
  recordkit list --filter 'Health > 50'
  recordkit list --filter 'Rarity == "rare" || Damage >= 10'`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		var pred *filter.Filter
		if listFilter != "" {
			pred, err = filter.Compile(listFilter)
			if err != nil {
				return err
			}
		}

		var recs []record.Record
		for _, name := range cat.FixtureNames() {
			fx, _ := cat.Fixture(name)
			if listShape != "" && fx.Record.Shape().Name() != listShape {
				continue
			}
			if pred != nil {
				match, err := pred.Matches(fx.Record)
				if err != nil {
					return err
				}
				if !match {
					slog.Debug("filtered out", "fixture", name)
					continue
				}
			}
			recs = append(recs, fx.Record)
		}

		return printRecords(recs...)
	},
}

func init() {
	listCmd.Flags().StringVar(&listShape, "shape", "", "only fixtures of this shape")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "filter expression over field values")
	rootCmd.AddCommand(listCmd)
}
