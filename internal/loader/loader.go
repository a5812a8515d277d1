package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/pitch-pine-trail/internal/models"
)

// DefaultParamsFile is the file LoadParamsDir looks for
const DefaultParamsFile = "params.yaml"

// LoadParams reads a parameter override file on top of the default table.
// The format is picked from the extension: .json, .yaml or .yml.
// Keys missing from the file keep their default value; an entry under
// "effects" replaces that action's coefficients as a whole.
func LoadParams(path string) (models.Params, error) {
	params := models.DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	if err := decode(path, data, &params); err != nil {
		return params, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := params.Validate(); err != nil {
		return params, fmt.Errorf("invalid params in %s: %w", filepath.Base(path), err)
	}

	return params, nil
}

// LoadParamsDir loads params.yaml from dataDir, falling back to defaults
// when the file does not exist
func LoadParamsDir(dataDir string) (models.Params, error) {
	path := filepath.Join(dataDir, DefaultParamsFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return models.DefaultParams(), nil
	}
	return LoadParams(path)
}

// LoadParamsOrDefault returns the defaults for an empty path
func LoadParamsOrDefault(path string) (models.Params, error) {
	if path == "" {
		return models.DefaultParams(), nil
	}
	return LoadParams(path)
}

func decode(path string, data []byte, params *models.Params) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal(data, params)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, params)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}
