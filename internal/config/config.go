// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-directory configuration file
const ConfigFileName = ".matlist.yaml"

// Config holds the export settings that stay fixed for one run
type Config struct {
	// Delimiter is the field separator in the output file ("," or ";")
	Delimiter string `yaml:"delimiter"`
	// DecimalSeparator is the separator in formatted numbers ("." or ",")
	DecimalSeparator string `yaml:"decimal_separator"`
	// Precision is the decimal-place count numbers are rounded to
	Precision int `yaml:"precision"`
	// LengthUnit, AreaUnit, VolumeUnit are the output units
	LengthUnit string `yaml:"length_unit"`
	AreaUnit   string `yaml:"area_unit"`
	VolumeUnit string `yaml:"volume_unit"`
	// MaterialCategories lists the categories expected to carry materials.
	// Elements of these categories get a placeholder row when neither
	// layers nor a fallback material resolve.
	MaterialCategories []string `yaml:"material_categories"`
	// OutputDir is where generated files land when no explicit path is given
	OutputDir string `yaml:"output_dir"`
	// ProgressEvery is the element interval for progress log lines
	ProgressEvery int `yaml:"progress_every"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Delimiter:        ";",
		DecimalSeparator: ",",
		Precision:        5,
		LengthUnit:       "mm",
		AreaUnit:         "m2",
		VolumeUnit:       "m3",
		MaterialCategories: []string{
			"Walls", "Floors", "Roofs", "Ceilings",
		},
		OutputDir:     ".",
		ProgressEvery: 50,
	}
}

// LoadConfig builds the configuration from defaults, an optional config
// file, a .env file, and MATLIST_* environment variables, in that order.
// An empty path means "use ConfigFileName if present".
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if path == "" {
		path = ConfigFileName
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}

	// .env values become plain environment variables, same as the shell
	// exporting them; existing variables win
	_ = godotenv.Load()

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFile merges a YAML config file into the configuration. A missing
// file is only an error when the caller named it explicitly.
func (c *Config) loadFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides settings from MATLIST_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("MATLIST_DELIMITER"); v != "" {
		c.Delimiter = v
	}
	if v := os.Getenv("MATLIST_DECIMAL_SEPARATOR"); v != "" {
		c.DecimalSeparator = v
	}
	if v := os.Getenv("MATLIST_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Precision = n
		}
	}
	if v := os.Getenv("MATLIST_LENGTH_UNIT"); v != "" {
		c.LengthUnit = v
	}
	if v := os.Getenv("MATLIST_AREA_UNIT"); v != "" {
		c.AreaUnit = v
	}
	if v := os.Getenv("MATLIST_VOLUME_UNIT"); v != "" {
		c.VolumeUnit = v
	}
	if v := os.Getenv("MATLIST_CATEGORIES"); v != "" {
		parts := strings.Split(v, ",")
		categories := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				categories = append(categories, p)
			}
		}
		c.MaterialCategories = categories
	}
	if v := os.Getenv("MATLIST_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Delimiter {
	case ",", ";":
	default:
		return fmt.Errorf("delimiter must be \",\" or \";\", got %q", c.Delimiter)
	}

	switch c.DecimalSeparator {
	case ".", ",":
	default:
		return fmt.Errorf("decimal separator must be \".\" or \",\", got %q", c.DecimalSeparator)
	}

	if c.Delimiter == c.DecimalSeparator {
		return fmt.Errorf("delimiter and decimal separator cannot both be %q", c.Delimiter)
	}

	if c.Precision < 0 || c.Precision > 9 {
		return fmt.Errorf("precision must be between 0 and 9, got %d", c.Precision)
	}

	if c.ProgressEvery <= 0 {
		c.ProgressEvery = 50
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	absPath, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}
	c.OutputDir = absPath

	return nil
}

// ExpectsMaterials reports whether a category is on the allow-list
func (c *Config) ExpectsMaterials(category string) bool {
	for _, cat := range c.MaterialCategories {
		if strings.EqualFold(cat, category) {
			return true
		}
	}
	return false
}
