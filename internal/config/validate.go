package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// SupportedCatalogVersions is the semver range of catalog documents this
// build understands.
const SupportedCatalogVersions = ">= 1.0.0, < 2.0.0"

//go:embed catalog_schema.json
var catalogSchema []byte

// checkVersion gates the catalog_version field against the supported range.
func checkVersion(version string) error {
	if version == "" {
		return fmt.Errorf("catalog_version is required")
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid catalog_version %q: %w", version, err)
	}
	constraint, err := semver.NewConstraint(SupportedCatalogVersions)
	if err != nil {
		return fmt.Errorf("invalid version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf(
			"catalog_version %s is outside the supported range %s",
			version, SupportedCatalogVersions,
		)
	}
	return nil
}

// validateDocument checks the raw YAML against the catalog JSON Schema
// before decoding, so structural mistakes surface with field locations.
func validateDocument(data []byte) error {
	jsonBytes, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("catalog is not valid YAML: %w", err)
	}

	var doc any
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return fmt.Errorf("catalog is not valid YAML: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("catalog_schema.json", bytes.NewReader(catalogSchema)); err != nil {
		return fmt.Errorf("failed to add catalog schema: %w", err)
	}
	schema, err := compiler.Compile("catalog_schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile catalog schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("catalog validation failed: %w", err)
	}
	return nil
}

// formatSchemaValidationError flattens a JSON Schema validation error
// tree into a readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("catalog validation failed")
	}
	return fmt.Errorf("catalog validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
