// Package problem loads declarative problem definitions (initial state,
// goals, action library) from YAML or JSON files.
package problem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/attain/pkg/domain"
)

// Load reads a problem definition from disk. Files ending in .json are
// decoded as JSON; everything else defaults to YAML.
func Load(path string) (*domain.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var p domain.Problem
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse problem json: %w", err)
		}
		if err := Validate(&p); err != nil {
			return nil, err
		}
		return &p, nil
	}

	return Parse(data)
}

// Parse decodes a YAML problem definition and validates it.
func Parse(data []byte) (*domain.Problem, error) {
	var p domain.Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse problem yaml: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks structural invariants: at least one goal and a name
// on every action. It does not check achievability — an unachievable
// goal is a planning failure, not a definition error.
func Validate(p *domain.Problem) error {
	if p == nil {
		return fmt.Errorf("problem is nil")
	}
	if len(p.Goals) == 0 {
		return domain.ErrNoGoals
	}
	for i, a := range p.Actions {
		if a.Name == "" {
			return fmt.Errorf("action at index %d has no name", i)
		}
	}
	return nil
}
