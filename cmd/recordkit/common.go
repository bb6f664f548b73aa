package main

import (
	"os"

	"github.com/spf13/viper"

	"github.com/Ddemon26/recordkit/internal/config"
	"github.com/Ddemon26/recordkit/internal/domain/record"
	"github.com/Ddemon26/recordkit/internal/output"
)

// loadCatalog resolves the active catalog: the --catalog flag, then the
// "catalog" config key, then the built-in catalog.
func loadCatalog() (*config.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = viper.GetString("catalog")
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Default()
}

// printRecords writes records to stdout in the selected output format.
func printRecords(records ...record.Record) error {
	formatter, err := output.NewFormatter(outputFormat, os.Stdout)
	if err != nil {
		return err
	}

	views := make([]output.View, len(records))
	for i, r := range records {
		views[i] = output.NewView(r)
	}
	return formatter.Format(views)
}
