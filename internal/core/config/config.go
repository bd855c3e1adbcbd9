// Package config loads and validates the inkwell configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/inkwell/internal/core/notify"
	"github.com/colonyops/inkwell/internal/core/styles"
	"github.com/colonyops/inkwell/internal/core/validate"
)

// Validation modes select the preset used by form fields.
const (
	ModeSubmit = validate.ModeSubmit // validate on submit and explicit user requests
	ModeBlur   = validate.ModeBlur   // also validate touched fields when they lose focus
	ModeChange = validate.ModeChange // also validate touched fields on every edit
)

// Actions a keybinding can trigger in the demo.
const (
	ActionToastSuccess = "toast-success"
	ActionToastInfo    = "toast-info"
	ActionToastWarn    = "toast-warn"
	ActionToastDanger  = "toast-danger"
	ActionFocusToast   = "focus-toast"
	ActionDismissToast = "dismiss-toast"
	ActionDismissAll   = "dismiss-all"
	ActionNextTheme    = "next-theme"
)

var validActions = []string{
	ActionToastSuccess,
	ActionToastInfo,
	ActionToastWarn,
	ActionToastDanger,
	ActionFocusToast,
	ActionDismissToast,
	ActionDismissAll,
	ActionNextTheme,
}

var defaultKeybindings = map[string]Keybinding{
	"ctrl+s": {Action: ActionToastSuccess, Help: "success toast"},
	"ctrl+o": {Action: ActionToastInfo, Help: "info toast"},
	"ctrl+w": {Action: ActionToastWarn, Help: "warning toast"},
	"ctrl+e": {Action: ActionToastDanger, Help: "danger toast"},
	"ctrl+f": {Action: ActionFocusToast, Help: "focus toast"},
	"ctrl+x": {Action: ActionDismissToast, Help: "dismiss toast"},
	"ctrl+l": {Action: ActionDismissAll, Help: "dismiss all"},
	"ctrl+t": {Action: ActionNextTheme, Help: "next theme"},
}

// Config holds the application configuration.
type Config struct {
	Theme       string                `yaml:"theme"`
	Toast       ToastConfig           `yaml:"toast"`
	Validation  ValidationConfig      `yaml:"validation"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
}

// ToastConfig configures the notification store.
type ToastConfig struct {
	TTL        time.Duration `yaml:"ttl"`
	MaxVisible int           `yaml:"max_visible"` // 0 = unlimited
}

// ValidationConfig configures form validation.
type ValidationConfig struct {
	AbortEarly bool   `yaml:"abort_early"`
	Mode       string `yaml:"mode"`
}

// Keybinding maps a key to a demo action.
type Keybinding struct {
	Action string `yaml:"action"`
	Help   string `yaml:"help"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Toast: ToastConfig{
			TTL:        notify.DefaultTTL,
			MaxVisible: 5,
		},
		Validation: ValidationConfig{
			Mode: ModeBlur,
		},
		Keybindings: map[string]Keybinding{},
	}
}

// Load reads configuration from the given path and validates it. If
// configPath is empty or doesn't exist, the defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg, err := Decode(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Decode reads configuration like Load but skips validation, so callers can
// report every problem in a broken file instead of stopping at the first.
func Decode(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// User keybindings override defaults for the same key
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Toast.TTL == 0 {
		c.Toast.TTL = defaults.Toast.TTL
	}
	if c.Validation.Mode == "" {
		c.Validation.Mode = defaults.Validation.Mode
	}
}

func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range user {
		result[k] = v
	}
	return result
}

// ActionKeys returns the keys bound to action.
func (c *Config) ActionKeys(action string) []string {
	var keys []string
	for k, kb := range c.Keybindings {
		if kb.Action == action {
			keys = append(keys, k)
		}
	}
	return keys
}
