package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/qnkhuat/polyterm/pkg/gui"
)

const (
	DefaultOrder       = 4
	DefaultConfigName  = ".polyterm.json"
	SshPort            = ":2222"
	ServerIdleTimeout  = 5 * time.Minute
	DefaultBinary      = "polyterm"
	DefaultExportImage = "polyominoes-%d.png"
)

// SSHConfig configures the SSH front end.
type SSHConfig struct {
	Address     string `json:"address"`
	HostKeyFile string `json:"hostKeyFile"`
	Binary      string `json:"binary"`
	IdleTimeout string `json:"idleTimeout"`
}

// Idle parses IdleTimeout, falling back to ServerIdleTimeout when unset.
func (c SSHConfig) Idle() (time.Duration, error) {
	if c.IdleTimeout == "" {
		return ServerIdleTimeout, nil
	}

	d, err := time.ParseDuration(c.IdleTimeout)
	if err != nil {
		return 0, fmt.Errorf("config: ssh idleTimeout: %w", err)
	}

	return d, nil
}

type Config struct {
	Order     int            `json:"order"`
	MaxOrder  int            `json:"maxOrder"`
	Reflect   bool           `json:"reflect"`
	Scale     int            `json:"scale"`
	Theme     string         `json:"theme"`
	Themes    []gui.ThemeHex `json:"themes"`
	LogPath   string         `json:"logPath"`
	ExportDir string         `json:"exportDir"`
	SSH       SSHConfig      `json:"ssh"`
}

func DefaultConfig() Config {
	return Config{
		Order:    DefaultOrder,
		MaxOrder: gui.DefaultMaxOrder,
		Scale:    1,
		Theme:    gui.ThemeBasic.Name,
		SSH: SSHConfig{
			Address: SshPort,
			Binary:  DefaultBinary,
		},
	}
}

// DefaultConfigPath is ~/.polyterm.json, or the bare file name when the
// home directory is unknown.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigName
	}

	return filepath.Join(homeDir, DefaultConfigName)
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return config, fmt.Errorf("config: %w", err)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return config, config.Validate()
}

// Validate checks the values a browser or server needs.
func (c Config) Validate() error {
	if c.MaxOrder < 1 {
		return fmt.Errorf("config: maxOrder must be positive, got %d", c.MaxOrder)
	}
	if c.Order < 1 || c.Order > c.MaxOrder {
		return fmt.Errorf("config: order must be between 1 and %d, got %d", c.MaxOrder, c.Order)
	}
	if c.Scale < 1 {
		return fmt.Errorf("config: scale must be positive, got %d", c.Scale)
	}
	if _, err := c.SSH.Idle(); err != nil {
		return err
	}

	return nil
}

// ResolveTheme finds the configured theme among the custom and built-in
// themes.
func (c Config) ResolveTheme() (gui.Theme, error) {
	return gui.ImportThemes(c.Theme, c.Themes)
}

// ExportPath is where a PNG sheet for order is written.
func (c Config) ExportPath(order int) string {
	name := fmt.Sprintf(DefaultExportImage, order)
	if c.ExportDir == "" {
		return name
	}

	return filepath.Join(c.ExportDir, name)
}
