// Package activitycfg loads the static activity-type catalog that drives
// keyword classification. The catalog is build-time configuration, loaded
// once and never mutated at runtime.
package activitycfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/greenmap-app/greenmap-verify/constants"
)

// Load reads and validates a catalog file. An empty path returns the
// compiled-in defaults.
func Load(path string, logger *slog.Logger) ([]constants.ActivityType, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		logger.Debug("using compiled-in activity catalog")
		return constants.DefaultActivityTypes(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read activity catalog: %w", err)
	}

	if err := validateAgainstSchema(BuildCatalogSchema(constants.ActivityIDs()), raw); err != nil {
		return nil, fmt.Errorf("activity catalog %s: %w", path, err)
	}

	var catalog []constants.ActivityType
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("decode activity catalog: %w", err)
	}

	logger.Info("activity catalog loaded", "path", path, "entries", len(catalog))
	return catalog, nil
}

// Find returns the catalog entry for the given id.
func Find(catalog []constants.ActivityType, id constants.ActivityID) (constants.ActivityType, bool) {
	for _, at := range catalog {
		if at.ID == id {
			return at, true
		}
	}
	return constants.ActivityType{}, false
}

// validateAgainstSchema validates "data" against "schemaMap".
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
