package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/anchorage/internal/model"
)

// LoadFile reads a scenario in the service's JSON format from disk.
func LoadFile(path string) (*model.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var sc model.Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &sc, nil
}

// SaveFile writes a scenario in the service's JSON format.
func SaveFile(path string, sc *model.Scenario) error {
	if sc == nil {
		return fmt.Errorf("%w: nothing to save", ErrMalformed)
	}
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return nil
}
