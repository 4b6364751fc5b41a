// Package config loads and saves focset's config.ini.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/inovacc/focset/internal/application"
	"github.com/inovacc/focset/internal/fsx"
	"github.com/inovacc/focset/internal/model"
	"gopkg.in/ini.v1"
)

type gameSection struct {
	Executable string `ini:"executable"`
}

type outputSection struct {
	Staged bool `ini:"staged"`
}

type logSection struct {
	Level  string `ini:"level"`
	Format string `ini:"format"`
}

type historySection struct {
	Enabled bool `ini:"enabled"`
}

type fileConfig struct {
	Game    gameSection    `ini:"game"`
	Output  outputSection  `ini:"output"`
	Log     logSection     `ini:"log"`
	History historySection `ini:"history"`
}

func fromModel(c model.Config) fileConfig {
	return fileConfig{
		Game:    gameSection{Executable: c.Executable},
		Output:  outputSection{Staged: c.Staged},
		Log:     logSection{Level: c.LogLevel, Format: c.LogFormat},
		History: historySection{Enabled: c.HistoryEnabled},
	}
}

func (f fileConfig) toModel() model.Config {
	return model.Config{
		Executable:     f.Game.Executable,
		Staged:         f.Output.Staged,
		LogLevel:       f.Log.Level,
		LogFormat:      f.Log.Format,
		HistoryEnabled: f.History.Enabled,
	}
}

// Keys lists the settable keys in section.key form.
var Keys = []string{"game.executable", "output.staged", "log.level", "log.format", "history.enabled"}

// DefaultPath returns <application dir>/config.ini.
func DefaultPath() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, application.ConfigFileName), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (model.Config, error) {
	fc := fromModel(model.DefaultConfig())

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc.toModel(), nil
		}

		return model.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	f, err := ini.Load(data)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := f.MapTo(&fc); err != nil {
		return model.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg := fc.toModel()
	if err := Validate(cfg); err != nil {
		return model.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg model.Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	f := ini.Empty()

	fc := fromModel(cfg)
	if err := ini.ReflectFrom(f, &fc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return fsx.WriteFileAtomic(path, buf.Bytes())
}

// Validate checks the enumerated settings.
func Validate(cfg model.Config) error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.LogLevel)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", cfg.LogFormat)
	}

	return nil
}

// Set assigns value to key (section.key form) on cfg.
func Set(cfg *model.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "game.executable":
		cfg.Executable = value
	case "output.staged":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("output.staged: %w", err)
		}

		cfg.Staged = b
	case "log.level":
		cfg.LogLevel = strings.ToLower(value)
	case "log.format":
		cfg.LogFormat = strings.ToLower(value)
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("history.enabled: %w", err)
		}

		cfg.HistoryEnabled = b
	default:
		return fmt.Errorf("unknown config key %q (expected one of %s)", key, strings.Join(Keys, ", "))
	}

	return Validate(*cfg)
}

// Get returns the value of key (section.key form) as text.
func Get(cfg model.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "game.executable":
		return cfg.Executable, nil
	case "output.staged":
		return strconv.FormatBool(cfg.Staged), nil
	case "log.level":
		return cfg.LogLevel, nil
	case "log.format":
		return cfg.LogFormat, nil
	case "history.enabled":
		return strconv.FormatBool(cfg.HistoryEnabled), nil
	default:
		return "", fmt.Errorf("unknown config key %q (expected one of %s)", key, strings.Join(Keys, ", "))
	}
}
