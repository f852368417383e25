package sitegen

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NavItem is one sidebar navigation entry.
type NavItem struct {
	// Title is the link text.
	Title string `yaml:"title"`
	// Path is the source path relative to the input dir, e.g.
	// "guide/install.md".
	Path string `yaml:"path"`
}

// Config describes one site build.
type Config struct {
	// Title is the site name, shown in the page header and <title>.
	Title string `yaml:"title"`
	// BaseURL prefixes every generated link. Defaults to "/".
	BaseURL string `yaml:"base_url"`
	// InputDir holds the Markdown sources. Defaults to "content".
	InputDir string `yaml:"input_dir"`
	// OutputDir receives the generated site. Defaults to "public".
	OutputDir string `yaml:"output_dir"`
	// Nav is the ordered sidebar navigation. Empty means every
	// discovered page in path order.
	Nav []NavItem `yaml:"nav"`
	// DetectLanguage enables code fence language detection.
	DetectLanguage bool `yaml:"detect_language"`
	// Jobs caps the number of parallel page builds. Zero or negative
	// means one worker per CPU.
	Jobs int `yaml:"jobs"`
}

// DefaultConfig returns a config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Title:     "Documentation",
		BaseURL:   "/",
		InputDir:  "content",
		OutputDir: "public",
	}
}

// LoadConfig reads a YAML site config from path and applies defaults
// to omitted fields.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.InputDir == "" {
		c.InputDir = defaults.InputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = defaults.OutputDir
	}
}

func (c *Config) validate() error {
	if !strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("base_url must end with /: %q", c.BaseURL)
	}
	if c.InputDir == c.OutputDir {
		return fmt.Errorf("input_dir and output_dir must differ: %q", c.InputDir)
	}
	return nil
}
