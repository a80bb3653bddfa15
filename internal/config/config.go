package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DefaultDeck string `toml:"default_deck"`
	Hands       int    `toml:"hands"`
	HandSize    int    `toml:"hand_size"`
	Color       bool   `toml:"color"`
	Seed        uint64 `toml:"seed"`
	Entropy     string `toml:"entropy"`

	// Colors maps a suit name to a hex colour, overriding the built-in palette
	Colors map[string]string `toml:"colors,omitempty"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultDeck: "standard",
		Hands:       2,
		HandSize:    5,
		Color:       true,
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the directory holding deck definition files
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "deckhand", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "deckhand", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing.
// Keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Hands < 1 {
		return fmt.Errorf("hands must be at least 1, got %d", c.Hands)
	}
	if c.HandSize < 0 {
		return fmt.Errorf("hand_size must not be negative, got %d", c.HandSize)
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to the config file, replacing its contents
func Save(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDeckPath resolves a deck definition, either by name in the deck
// library or as a path to a .toml file
func GetDeckPath(deckName string) (string, error) {
	libraryPath := GetDeckLibraryPath()
	for _, candidate := range []string{
		filepath.Join(libraryPath, deckName+".toml"),
		filepath.Join(libraryPath, deckName),
	} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	if info, err := os.Stat(deckName); err == nil && !info.IsDir() {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckName
	return Save(config)
}

// Keys lists the settings accepted by Set
var Keys = []string{"default_deck", "hands", "hand_size", "color", "seed", "entropy"}

// Set parses value for the named key and stores it in the config file
func Set(key, value string) (*Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if err := config.set(key, value); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) set(key, value string) error {
	var err error
	switch key {
	case "default_deck":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("default_deck must not be empty")
		}
		c.DefaultDeck = value
	case "hands":
		c.Hands, err = strconv.Atoi(value)
	case "hand_size":
		c.HandSize, err = strconv.Atoi(value)
	case "color":
		c.Color, err = strconv.ParseBool(value)
	case "seed":
		c.Seed, err = strconv.ParseUint(value, 10, 64)
	case "entropy":
		c.Entropy = value
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}

	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	return nil
}
