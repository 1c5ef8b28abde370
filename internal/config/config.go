package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/LFroesch/burrow/internal/logger"
)

// Editor is one entry of the "open with" list.
type Editor struct {
	Label   string `toml:"label"`
	Program string `toml:"program"`
}

// Config holds all burrow configuration. The file is optional and read-only:
// burrow never writes it back.
type Config struct {
	Editors      []Editor `toml:"editors"`
	SystemOpener bool     `toml:"system_opener"`
	UseTrash     bool     `toml:"use_trash"`
	ShowIcons    bool     `toml:"show_icons"`
	LogLevel     string   `toml:"log_level"`
}

const maxEditors = 16

var validLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Editors:      DefaultEditors(),
		SystemOpener: true,
		UseTrash:     false,
		ShowIcons:    true,
		LogLevel:     "info",
	}
}

// DefaultEditors is the built-in editor list.
func DefaultEditors() []Editor {
	return []Editor{
		{Label: "Open in Nano", Program: "nano"},
		{Label: "Open in Vim", Program: "vim"},
		{Label: "Open in WebStorm", Program: "webstorm"},
		{Label: "Open in RustRover", Program: "rustrover"},
		{Label: "Open in VS Code", Program: "code"},
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := logger.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path, or the default location when path is empty.
// A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			logger.Warn("Cannot resolve config path: %v, using defaults", err)
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result. Keys absent
// from the document keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Editors = nil

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}

	cfg.validate()
	return cfg, nil
}

func (c *Config) validate() {
	// Drop editors without a program; fill in missing labels
	editors := make([]Editor, 0, len(c.Editors))
	for _, e := range c.Editors {
		program := strings.TrimSpace(e.Program)
		if program == "" {
			logger.Warn("Ignoring editor %q without a program", e.Label)
			continue
		}
		label := strings.TrimSpace(e.Label)
		if label == "" {
			label = "Open in " + program
		}
		editors = append(editors, Editor{Label: label, Program: program})
	}
	if len(editors) == 0 {
		editors = DefaultEditors()
	} else if len(editors) > maxEditors {
		logger.Warn("Too many editors (%d), keeping the first %d", len(editors), maxEditors)
		editors = editors[:maxEditors]
	}
	c.Editors = editors

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	} else if !contains(validLevels, c.LogLevel) {
		logger.Warn("Unknown log_level %q, using info", c.LogLevel)
		c.LogLevel = "info"
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
