package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultFortressConfig() {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultFortressConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fortress.yaml")
	data := []byte("economy:\n  starting_currency: 250\nfortress:\n  health: 40\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Economy.StartingCurrency != 250 {
		t.Errorf("StartingCurrency = %d, expected 250", cfg.Economy.StartingCurrency)
	}
	if cfg.Fortress.Health != 40 {
		t.Errorf("Fortress.Health = %d, expected 40", cfg.Fortress.Health)
	}
	// Untouched keys keep their defaults
	if cfg.Defenses.Tiers != 15 {
		t.Errorf("Defenses.Tiers = %d, expected default 15", cfg.Defenses.Tiers)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() with a missing custom path should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should reject malformed YAML")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultFortressConfig()
	cfg.World.Width = 0
	cfg.Enemies.Tiers = -1
	cfg.Enemies.EntryMinOffset = 60

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"world.width", "enemies.tiers", "entry_max_offset"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}

	if err := DefaultFortressConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		currency int
		health   int
	}{
		{DifficultyEasy, 200, 1500},
		{DifficultyNormal, 100, 1000},
		{DifficultyHard, 60, 700},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultFortressConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Economy.StartingCurrency != tc.currency {
				t.Errorf("StartingCurrency = %d, expected %d", cfg.Economy.StartingCurrency, tc.currency)
			}
			if cfg.Fortress.Health != tc.health {
				t.Errorf("Fortress.Health = %d, expected %d", cfg.Fortress.Health, tc.health)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFortressConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "starting_currency: 100") {
		t.Errorf("marshaled YAML missing economy section:\n%s", data)
	}
}
