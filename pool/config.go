package pool

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

var ErrConfig = errors.New("invalid pool config")

// TierConfig sets the buffer size and the number of pooled buffers of a tier.
type TierConfig struct {
	Size  int `yaml:"size"`
	Slots int `yaml:"slots"`
}

// Config describes the three tiers of a Pool. Sizes must be strictly
// increasing from Small to Large.
type Config struct {
	Small  TierConfig `yaml:"small"`
	Medium TierConfig `yaml:"medium"`
	Large  TierConfig `yaml:"large"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Small:  TierConfig{Size: 1 << 10, Slots: 128},
		Medium: TierConfig{Size: 8 << 10, Slots: 32},
		Large:  TierConfig{Size: 64 << 10, Slots: 8},
	}
}

func (c *Config) tiers() [numTiers]TierConfig {
	return [numTiers]TierConfig{c.Small, c.Medium, c.Large}
}

// Validate checks sizes and slot counts.
func (c *Config) Validate() error {
	prev := 0
	for i, tc := range c.tiers() {
		t := Tier(i)
		if tc.Size <= 0 {
			return fmt.Errorf("%w: %s size must be positive, got %d", ErrConfig, t, tc.Size)
		}
		if tc.Slots < 0 {
			return fmt.Errorf("%w: %s slots must not be negative, got %d", ErrConfig, t, tc.Slots)
		}
		if tc.Size <= prev {
			return fmt.Errorf("%w: %s size %d must exceed %d", ErrConfig, t, tc.Size, prev)
		}
		prev = tc.Size
	}
	return nil
}

// LoadConfig reads a YAML pool configuration. Tiers missing from the input
// keep their DefaultConfig values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	d, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("error reading pool config: %w", err)
	}
	if err := yaml.UnmarshalWithOptions(d, &cfg, yaml.Strict()); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig on the named file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	return LoadConfig(f)
}
