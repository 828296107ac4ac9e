package bench

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Config holds the benchmark settings.
type Config struct {
	// Capacity is the slot count of every chained table under test, and the
	// size hint given to the baseline map.
	Capacity int `json:"capacity"`
	// Keys is how many keys each container is filled with before a measured
	// batch. Zero means Capacity.
	Keys       int      `json:"keys,omitempty"`
	Rounds     int      `json:"rounds"`
	Warmup     int      `json:"warmup"`
	Operations []string `json:"operations,omitempty"`
	// Output is an optional path for the JSON report.
	Output string `json:"output,omitempty"`
}

// DefaultConfig mirrors the original comparison: 1000 slots and 1000 keys.
func DefaultConfig() Config {
	return Config{
		Capacity:   1_000,
		Rounds:     20,
		Warmup:     3,
		Operations: []string{string(OpAdd), string(OpGet), string(OpRemove)},
	}
}

// KeyCount returns the number of keys each container is filled with.
func (c Config) KeyCount() int {
	if c.Keys == 0 {
		return c.Capacity
	}
	return c.Keys
}

// LoadConfig returns the defaults overlaid with the JSONC file at path. An
// empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigFileRead, path, err)
	}

	cfg, err = ParseConfig(data, cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes JSON with comments and trailing commas onto base.
// Fields missing from data keep their value from base.
func ParseConfig(data []byte, base Config) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: invalid JSONC: %w", errConfigInvalid, err)
	}

	cfg := base
	cfg.Operations = append([]string(nil), base.Operations...)

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: invalid JSON: %w", errConfigInvalid, err)
	}

	return cfg, nil
}

// Validate reports the first problem with c, if any.
func (c Config) Validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: %w (got %d)", errConfigInvalid, errCapacity, c.Capacity)
	case c.Keys < 0:
		return fmt.Errorf("%w: %w (got %d)", errConfigInvalid, errKeyCount, c.Keys)
	case c.Rounds <= 0:
		return fmt.Errorf("%w: %w (got %d)", errConfigInvalid, errRounds, c.Rounds)
	case c.Warmup < 0:
		return fmt.Errorf("%w: %w (got %d)", errConfigInvalid, errWarmup, c.Warmup)
	}

	_, err := ParseOperations(c.Operations)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfigInvalid, err)
	}

	return nil
}

// FormatConfig returns the config as indented JSON.
func FormatConfig(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}
