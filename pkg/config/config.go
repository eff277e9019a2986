package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/BrainBlend-AI/atomic-tools/tools"
)

type Config struct {
	App       AppConfig                 `yaml:"app"`
	Tools     ToolsConfig               `yaml:"tools"`
	Providers map[string]ProviderConfig `yaml:"providers"`
	Memory    MemoryConfig              `yaml:"memory"`
}

type AppConfig struct {
	Name string `yaml:"name"`
}

// ToolsConfig carries the per-tool config sections.
type ToolsConfig struct {
	Calculator tools.CalculatorConfig `yaml:"calculator"`
	Converter  tools.ConverterConfig  `yaml:"converter"`
	Scraper    tools.ScraperConfig    `yaml:"scraper"`
	Search     tools.SearchConfig     `yaml:"search"`
}

type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
	Enabled bool   `yaml:"enabled"`
}

type MemoryConfig struct {
	Path string `yaml:"path"`
}

func Default() *Config {
	return &Config{
		App:    AppConfig{Name: "atomic-tools"},
		Memory: MemoryConfig{Path: "atomic-tools.db"},
	}
}

// LoadConfig reads a YAML config file. A missing file is not an
// error: defaults apply so the CLI works out of the box. A file that
// exists but does not parse is fatal.
func LoadConfig(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default()
		}
		log.Fatalf("failed to read config file: %v", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Fatalf("failed to decode config file: %v", err)
	}
	return cfg
}

// GetDefaultProvider returns the first enabled provider in name
// order, so repeated calls pick the same one.
func (c *Config) GetDefaultProvider() (string, ProviderConfig) {
	names := make([]string, 0, len(c.Providers))
	for name := range c.Providers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if p := c.Providers[name]; p.Enabled {
			return name, p
		}
	}
	return "", ProviderConfig{}
}
