package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fort/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	Algorithm string         `json:"algorithm"`
	KDF       string         `json:"kdf"`
	SitesFile string         `json:"sites_file"`
	LogLevel  string         `json:"log_level"`
	LogFormat string         `json:"log_format"`
	Templates []TemplateSpec `json:"templates"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config in args. Fields absent from the file keep their current value.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigPath(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Algorithm != "" {
		cfg.Algorithm = jc.Algorithm
	}
	if jc.KDF != "" {
		cfg.KDF = jc.KDF
	}
	if jc.SitesFile != "" {
		cfg.SitesFile = jc.SitesFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	if len(jc.Templates) > 0 {
		cfg.Templates = jc.Templates
	}
}
