// Package config loads the optional YAML settings file
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/aelyra/audio"
	"github.com/lixenwraith/aelyra/input"
	"gopkg.in/yaml.v3"
)

// DefaultAssetsDir is searched for images when neither flag nor file names one
const DefaultAssetsDir = "assets"

// Config mirrors the settings file. Unset fields keep their defaults.
type Config struct {
	Assets string              `yaml:"assets"`
	Seed   int64               `yaml:"seed"`
	Audio  AudioSection        `yaml:"audio"`
	Keys   map[string][]string `yaml:"keys"`
}

// AudioSection is the audio block; volume is 0-100
type AudioSection struct {
	Enabled *bool `yaml:"enabled"`
	Volume  *int  `yaml:"volume"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{Assets: DefaultAssetsDir}
}

// Load reads path. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a settings document and validates its keymap
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if cfg.Assets == "" {
		cfg.Assets = DefaultAssetsDir
	}

	if _, err := input.LoadKeyConfig(cfg.Keys); err != nil {
		return nil, err
	}
	return cfg, nil
}

// KeyTable returns the default bindings with the file's overrides merged in
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// AudioConfig layers the file's audio block over the defaults, then the environment
func (c *Config) AudioConfig() *audio.AudioConfig {
	base := audio.DefaultAudioConfig()
	if c.Audio.Enabled != nil {
		base.Enabled = *c.Audio.Enabled
	}
	if c.Audio.Volume != nil {
		base.MasterVolume = min(max(float64(*c.Audio.Volume)/100.0, 0), 1)
	}
	return audio.LoadAudioConfig(base)
}
