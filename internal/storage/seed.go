package storage

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed string

// SeedEntry is one question/answer pair in a seed file.
type SeedEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Tags     string `yaml:"tags,omitempty"`
}

// DefaultSeed returns the built-in starter entries.
func DefaultSeed() ([]SeedEntry, error) {
	return LoadSeed(strings.NewReader(defaultSeed))
}

// LoadSeed parses a YAML list of seed entries. Entries without a question or
// an answer are rejected.
func LoadSeed(r io.Reader) ([]SeedEntry, error) {
	var entries []SeedEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return []SeedEntry{}, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Question) == "" || strings.TrimSpace(e.Answer) == "" {
			return nil, fmt.Errorf("seed entry %d: question and answer are required", i)
		}
	}
	return entries, nil
}
