package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadVariables reads a variable mapping from a YAML file. The file must be
// a flat mapping from variable name to number:
//
//	x: 2
//	rate: 1.25
func LoadVariables(path string) (map[string]float64, error) {
	if path == "" {
		return map[string]float64{}, nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variables file: %w", err)
	}

	vars := map[string]float64{}
	if err := yaml.Unmarshal(body, &vars); err != nil {
		return nil, fmt.Errorf("failed to parse variables file %s: %w", path, err)
	}

	return vars, nil
}
