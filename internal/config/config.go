package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/fort/internal/common"
	"github.com/dmitrijs2005/fort/internal/cryptox"
	"github.com/dmitrijs2005/fort/internal/hashx"
	"github.com/dmitrijs2005/fort/internal/logging"
	"github.com/dmitrijs2005/fort/internal/template"
)

// TemplateSpec declares a custom template in pattern notation
// (see template.ParsePattern).
type TemplateSpec struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// Config holds runtime settings for the fort CLI.
type Config struct {
	Algorithm string
	KDF       string
	SitesFile string
	LogLevel  string
	LogFormat string
	Templates []TemplateSpec
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Algorithm = common.DefaultAlgorithm
	c.KDF = cryptox.KDFScrypt
	c.SitesFile = ""
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.Templates = nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}

// Validate checks every field that can be checked without deriving a key.
func (c *Config) Validate() error {
	if _, err := hashx.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := cryptox.NewKDF(c.KDF); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.New(io.Discard, slog.LevelInfo, c.LogFormat); err != nil {
		return err
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	return nil
}

// Registry returns the built-in catalog extended with the configured templates.
func (c *Config) Registry() (*template.Registry, error) {
	if len(c.Templates) == 0 {
		return template.Default(), nil
	}
	ts := make([]template.Template, 0, len(c.Templates))
	for _, spec := range c.Templates {
		t, err := template.ParsePattern(spec.Name, spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", spec.Name, err)
		}
		ts = append(ts, t)
	}
	return template.Default().With(ts...)
}
