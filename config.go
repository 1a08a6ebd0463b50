package docextract

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the settings of an Extractor.
type Config struct {
	// ParallelFields runs the field parsers of one extraction concurrently.
	// Results are identical either way.
	ParallelFields bool `json:"parallel_fields" yaml:"parallel_fields"`

	// MaxFileSize rejects larger inputs with ErrFileTooLarge. 0 means no limit.
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// MaxPages stops PDF extraction after that many pages. 0 reads every page.
	MaxPages int `json:"max_pages" yaml:"max_pages"`
}

// DefaultConfig returns a Config with sensible defaults for browser-sized uploads.
func DefaultConfig() Config {
	return Config{
		MaxFileSize: 20 << 20, // 20 MiB
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys absent from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.MaxFileSize < 0 {
		return fmt.Errorf("%w: max_file_size must be >= 0, got %d", ErrInvalidConfig, c.MaxFileSize)
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("%w: max_pages must be >= 0, got %d", ErrInvalidConfig, c.MaxPages)
	}
	return nil
}
