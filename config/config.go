// Package config loads the service configuration from yaml or json files
// with environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kaiyomaru/fieldassign/api"
	"github.com/kaiyomaru/fieldassign/core/assign"
	"github.com/kaiyomaru/fieldassign/infra/loader"
	"github.com/kaiyomaru/fieldassign/infra/metrics"
	"github.com/kaiyomaru/fieldassign/infra/mqtt"
)

// Config is the root configuration.
type Config struct {
	Data    loader.Config  `json:"data"`
	Assign  assign.Config  `json:"assign"`
	Metrics metrics.Config `json:"metrics"`
	MQTT    mqtt.Config    `json:"mqtt"`
	API     api.Config     `json:"api"`
}

// Load reads the file at path, applies FA_-prefixed environment overrides
// (FA_API__ADDR=:9090 sets api.addr) and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("FA_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fa_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Assign.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.API.SetDefaults()
	if err := cfg.Data.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Assign.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
