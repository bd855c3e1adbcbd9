package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/inkwell/internal/core/styles"
	"github.com/colonyops/inkwell/internal/core/validate"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is valid. Failures are reported as
// criterio.FieldErrors keyed by the yaml path of the offending option.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
		fieldErr("toast.ttl", positiveDuration(c.Toast.TTL)),
		fieldErr("toast.max_visible", nonNegative(c.Toast.MaxVisible)),
		criterio.Run("validation.mode", c.Validation.Mode, knownMode),
		c.validateKeybindings(),
	)
}

// ValidateDeep runs Validate and additionally checks that configPath, when
// set, is a readable file.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return validateConfigFile(configPath)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Toast.MaxVisible == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Toast",
			Item:     "max_visible",
			Message:  "toasts are never evicted; a burst of notifications can cover the screen",
		})
	}
	if c.Toast.TTL < time.Second {
		warnings = append(warnings, ValidationWarning{
			Category: "Toast",
			Item:     "ttl",
			Message:  fmt.Sprintf("toasts expire after %s, which may be too short to read", c.Toast.TTL),
		})
	}

	return warnings
}

func fieldErr(field string, err error) error {
	if err == nil {
		return nil
	}
	return criterio.NewFieldErrors(field, err)
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func positiveDuration(d time.Duration) error {
	if d <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func nonNegative(n int) error {
	if n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func knownMode(mode string) error {
	_, err := validate.ForMode(mode)
	return err
}

func (c *Config) validateKeybindings() error {
	keys := make([]string, 0, len(c.Keybindings))
	for k := range c.Keybindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs criterio.FieldErrorsBuilder
	for _, key := range keys {
		kb := c.Keybindings[key]
		field := fmt.Sprintf("keybindings[%q].action", key)
		if kb.Action == "" {
			errs = errs.Append(field, errors.New("action is required"))
			continue
		}
		if !slices.Contains(validActions, kb.Action) {
			errs = errs.Append(field, fmt.Errorf("invalid action %q", kb.Action))
		}
	}
	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}
