package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"classicsnake/internal/game"

	"github.com/BurntSushi/toml"
)

const (
	dirName  = "snake"
	fileName = "config.toml"
	envPath  = "SNAKE_CONFIG"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	FieldWidth  int    `toml:"field_width"`
	FieldHeight int    `toml:"field_height"`
	UnitSize    int    `toml:"unit_size"`
	StartX      int    `toml:"start_x"`
	StartY      int    `toml:"start_y"`
	Speed       int    `toml:"speed"`
	Seed        uint64 `toml:"seed"`
	Sound       bool   `toml:"sound"`
}

// Default is the classic 400x400 board with 20px cells, snake starting mid-field.
func Default() Config {
	return Config{
		FieldWidth:  game.DefaultWidth,
		FieldHeight: game.DefaultHeight,
		UnitSize:    game.DefaultUnit,
		StartX:      game.DefaultStartX,
		StartY:      game.DefaultStartY,
		Speed:       game.DefaultSpeed,
		Sound:       true,
	}
}

// Path resolves the config file: explicit path, then $SNAKE_CONFIG, then the user config dir.
func Path(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(envPath); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, dirName, fileName), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Save writes c as TOML, creating parent directories.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return f.Close()
}

func (c Config) Validate() error {
	switch {
	case c.UnitSize <= 0:
		return fmt.Errorf("%w: unit_size must be positive, got %d", ErrInvalid, c.UnitSize)
	case c.FieldWidth < c.UnitSize || c.FieldWidth%c.UnitSize != 0:
		return fmt.Errorf("%w: field_width %d must be a positive multiple of unit_size %d", ErrInvalid, c.FieldWidth, c.UnitSize)
	case c.FieldHeight < c.UnitSize || c.FieldHeight%c.UnitSize != 0:
		return fmt.Errorf("%w: field_height %d must be a positive multiple of unit_size %d", ErrInvalid, c.FieldHeight, c.UnitSize)
	case c.StartX < 0 || c.StartX > c.FieldWidth-c.UnitSize || c.StartX%c.UnitSize != 0:
		return fmt.Errorf("%w: start_x %d is not a field cell", ErrInvalid, c.StartX)
	case c.StartY < 0 || c.StartY > c.FieldHeight-c.UnitSize || c.StartY%c.UnitSize != 0:
		return fmt.Errorf("%w: start_y %d is not a field cell", ErrInvalid, c.StartY)
	case c.Speed < game.MinSpeed || c.Speed > game.MaxSpeed:
		return fmt.Errorf("%w: speed %d outside %d..%d", ErrInvalid, c.Speed, game.MinSpeed, game.MaxSpeed)
	}
	return nil
}

// GameOptions converts the file settings to session options.
func (c Config) GameOptions() game.Options {
	return game.Options{
		Width:  c.FieldWidth,
		Height: c.FieldHeight,
		Unit:   c.UnitSize,
		StartX: c.StartX,
		StartY: c.StartY,
		Speed:  c.Speed,
		Seed:   c.Seed,
	}
}
