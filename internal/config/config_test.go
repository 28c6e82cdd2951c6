package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"classicsnake/internal/game"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if _, err := game.New(Default().GameOptions()); err != nil {
		t.Fatalf("default options rejected by game: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Default() {
		t.Fatalf("Load = %+v, want defaults", c)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "field_width = 600\nspeed = 5\nsound = false\nseed = 99\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.FieldWidth != 600 || c.Speed != 5 || c.Sound || c.Seed != 99 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.FieldHeight != game.DefaultHeight || c.UnitSize != game.DefaultUnit {
		t.Fatalf("unset keys lost their defaults: %+v", c)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("speed = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load err = %v, want ErrInvalid", err)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("speed = = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Default()
	want.Speed = 2
	want.Seed = 7
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{name: "zero unit", mod: func(c *Config) { c.UnitSize = 0 }},
		{name: "width not multiple", mod: func(c *Config) { c.FieldWidth = 410 }},
		{name: "height too small", mod: func(c *Config) { c.FieldHeight = 10 }},
		{name: "start x outside", mod: func(c *Config) { c.StartX = 400 }},
		{name: "start y misaligned", mod: func(c *Config) { c.StartY = 15 }},
		{name: "speed low", mod: func(c *Config) { c.Speed = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mod(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPathResolution(t *testing.T) {
	if p, _ := Path("/tmp/x.toml"); p != "/tmp/x.toml" {
		t.Fatalf("explicit path ignored: %s", p)
	}
	t.Setenv("SNAKE_CONFIG", "/tmp/env.toml")
	if p, _ := Path(""); p != "/tmp/env.toml" {
		t.Fatalf("env path ignored: %s", p)
	}
	t.Setenv("SNAKE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	p, err := Path("")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if filepath.Base(p) != "config.toml" || filepath.Base(filepath.Dir(p)) != "snake" {
		t.Fatalf("unexpected default path %s", p)
	}
}
