package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of one decompose/pack run.
type Config struct {
	// PartSizePercentOfWorld is P in min_edge = max(1, round(min(w,h)*P/100)).
	PartSizePercentOfWorld int `yaml:"part_size_percent_of_world"`

	// BoundingBoxWeight and NumOfPartsWeight are the grader's w_B, w_K; must sum to 1.
	BoundingBoxWeight float64 `yaml:"bounding_box_weight"`
	NumOfPartsWeight  float64 `yaml:"num_of_parts_weight"`

	// ThreeD selects box/rectangle part generation.
	ThreeD bool `yaml:"three_d"`
}

// Default returns the configuration's documented defaults: 20% part
// size, 0.6/0.4 grading weights, 2D mode.
func Default() Config {
	return Config{
		PartSizePercentOfWorld: 20,
		BoundingBoxWeight:      0.6,
		NumOfPartsWeight:       0.4,
		ThreeD:                 false,
	}
}

// Load reads and validates a YAML configuration file at path. Fields
// absent from the file keep Default's values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether cfg's parameters are usable: the part-size
// percentage lies in (0, 100], and the grading weights are
// non-negative and sum to 1 (within floating-point tolerance).
func (cfg Config) Validate() error {
	if cfg.PartSizePercentOfWorld <= 0 || cfg.PartSizePercentOfWorld > 100 {
		return fmt.Errorf("%w: part_size_percent_of_world = %d, want (0,100]", ErrInvalidConfig, cfg.PartSizePercentOfWorld)
	}
	if cfg.BoundingBoxWeight < 0 || cfg.NumOfPartsWeight < 0 {
		return fmt.Errorf("%w: grading weights must be non-negative", ErrInvalidConfig)
	}
	if sum := cfg.BoundingBoxWeight + cfg.NumOfPartsWeight; sum < 1-1e-9 || sum > 1+1e-9 {
		return fmt.Errorf("%w: weights sum to %.4f, want 1", ErrInvalidConfig, sum)
	}
	return nil
}
