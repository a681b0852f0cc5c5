package scale

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// patternFile is the on-disk form of custom patterns:
//
//	patterns:
//	  - name: Harmonic Minor
//	    intervals: [2, 1, 2, 2, 1, 3, 1]
type patternFile struct {
	Patterns []Pattern `yaml:"patterns"`
}

// LoadPatterns decodes a YAML pattern file. An empty document yields no
// patterns.
func LoadPatterns(r io.Reader) ([]Pattern, error) {
	var f patternFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not decode patterns: %w", err)
	}
	return f.Patterns, nil
}

// Load registers every pattern in a YAML pattern file, stopping at the first
// one that is rejected.
func (b *Builder) Load(r io.Reader) error {
	patterns, err := LoadPatterns(r)
	if err != nil {
		return err
	}
	for i, p := range patterns {
		if err := b.Register(p); err != nil {
			return fmt.Errorf("pattern %d: %w", i, err)
		}
	}
	return nil
}
