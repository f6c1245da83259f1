package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/lixenwraith/aelyra/audio"
	"github.com/lixenwraith/aelyra/input"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Assets != DefaultAssetsDir || cfg.Seed != 0 || len(cfg.Keys) != 0 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aelyra.yaml")
	doc := `
assets: /opt/aelyra/art
seed: 42
audio:
  enabled: false
  volume: 30
keys:
  move_left: [a]
  jump: []
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Assets != "/opt/aelyra/art" || cfg.Seed != 42 {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable failed: %v", err)
	}
	if keys := kt.KeysFor(input.ActionMoveLeft); !slices.Equal(keys, []string{"a"}) {
		t.Errorf("move_left = %v", keys)
	}
	if keys := kt.KeysFor(input.ActionJump); !slices.Equal(keys, []string{"space", "up"}) {
		t.Errorf("Empty list should keep jump defaults, got %v", keys)
	}

	t.Setenv(audio.EnvAudioEnabled, "")
	t.Setenv(audio.EnvMasterVolume, "")
	ac := cfg.AudioConfig()
	if ac.Enabled || ac.MasterVolume != 0.3 {
		t.Errorf("Audio block not applied: enabled=%v volume=%v", ac.Enabled, ac.MasterVolume)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	cfg, err := Parse([]byte("audio:\n  volume: 30\n"))
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv(audio.EnvMasterVolume, "80")
	if v := cfg.AudioConfig().MasterVolume; v != 0.8 {
		t.Errorf("Expected env volume 0.8, got %v", v)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"Unknown action", "keys:\n  teleport: [t]\n", input.ErrUnknownAction},
		{"Unknown key", "keys:\n  jump: [warp]\n", input.ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := Parse([]byte("colour: blue\n")); err == nil {
		t.Error("Expected unknown field to be rejected")
	}
	if _, err := Parse([]byte("seed: [1, 2]\n")); err == nil {
		t.Error("Expected type mismatch to fail")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Empty document should parse: %v", err)
	}
	if cfg.Assets != DefaultAssetsDir {
		t.Errorf("Expected default assets dir, got %q", cfg.Assets)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}
