// Package catalog loads the list of candidates administrators can pick from
// when building a campaign slate.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Candidate struct {
	ID          int64  `yaml:"id" json:"id"`
	Name        string `yaml:"nombre" json:"nombre"`
	Description string `yaml:"descripcion,omitempty" json:"descripcion,omitempty"`
}

type document struct {
	Candidates []Candidate `yaml:"candidatos"`
}

// Load reads a YAML catalog. A missing file yields an empty catalog.
func Load(path string) ([]Candidate, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return []Candidate{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Candidate{}, nil
		}
		return nil, fmt.Errorf("read candidate catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]Candidate, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse candidate catalog: %w", err)
	}
	seen := make(map[int64]struct{}, len(doc.Candidates))
	items := make([]Candidate, 0, len(doc.Candidates))
	for i, candidate := range doc.Candidates {
		candidate.Name = strings.TrimSpace(candidate.Name)
		if candidate.ID <= 0 || candidate.Name == "" {
			return nil, fmt.Errorf("candidate catalog entry %d needs a positive id and a name", i)
		}
		if _, ok := seen[candidate.ID]; ok {
			return nil, fmt.Errorf("candidate catalog repeats id %d", candidate.ID)
		}
		seen[candidate.ID] = struct{}{}
		items = append(items, candidate)
	}
	return items, nil
}
