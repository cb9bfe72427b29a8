package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fieldmap/internal/filter"
	"fieldmap/internal/mapping"
	"fieldmap/internal/match"
	"fieldmap/internal/typo"
)

// CurrentVersion is the only profile version understood.
const CurrentVersion = "1"

// ErrUnsupportedVersion is returned for profiles with an unknown version.
var ErrUnsupportedVersion = errors.New("unsupported profile version")

// Profile is the decoded content of a profile file.
type Profile struct {
	Version         string        `yaml:"version"`
	Fields          StringOrArray `yaml:"fields,omitempty"`
	Include         StringOrArray `yaml:"include,omitempty"`
	Exclude         StringOrArray `yaml:"exclude,omitempty"`
	SkipUnsupported bool          `yaml:"skip_unsupported,omitempty"`
	// Threshold is the minimum similarity for a typo suggestion.
	// Nil means match.DefaultMinSimilarity.
	Threshold *float64 `yaml:"threshold,omitempty"`
	// Fold makes typo matching ignore case and separators.
	Fold bool `yaml:"fold,omitempty"`
}

// LoadFile loads and parses a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse parses YAML data into a Profile. An empty document is a valid
// profile with every default applied.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	if err := p.validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	var p Profile

	applyDefaults(&p)

	return &p
}

func applyDefaults(p *Profile) {
	if p.Version == "" {
		p.Version = CurrentVersion
	}

	if p.Threshold == nil {
		t := match.DefaultMinSimilarity
		p.Threshold = &t
	}
}

func (p *Profile) validate() error {
	if p.Version != CurrentVersion {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, p.Version)
	}

	if t := *p.Threshold; t < 0 || t > 1 {
		return fmt.Errorf("threshold %v out of range [0, 1]", t)
	}

	return nil
}

// SetThreshold overrides the typo threshold.
func (p *Profile) SetThreshold(t float64) error {
	if t < 0 || t > 1 {
		return fmt.Errorf("threshold %v out of range [0, 1]", t)
	}

	p.Threshold = &t

	return nil
}

// MappingOptions returns the parser options the profile asks for.
func (p *Profile) MappingOptions() []mapping.Option {
	if p.SkipUnsupported {
		return []mapping.Option{mapping.SkipUnsupported()}
	}

	return nil
}

// TypoOptions returns the typo finder options the profile asks for.
func (p *Profile) TypoOptions() []typo.Option {
	opts := []typo.Option{typo.WithThreshold(*p.Threshold)}
	if p.Fold {
		opts = append(opts, typo.WithFold())
	}

	return opts
}

// Filter compiles the include and exclude patterns.
func (p *Profile) Filter() (*filter.Filter, error) {
	return filter.New(p.Include, p.Exclude)
}

// Marshal serializes a Profile to YAML.
func Marshal(p *Profile) ([]byte, error) {
	return yaml.Marshal(p)
}
