package config

import (
	"fmt"
	"strings"

	"github.com/bnema/webwindow/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values.
// The returned error matches entity.ErrConfiguration.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateWindows(config)...)
	validationErrors = append(validationErrors, validateSchemes(config)...)
	validationErrors = append(validationErrors, validateKeybindings("keybindings", config.Keybindings)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w: config validation failed:\n  - %s",
			entity.ErrConfiguration, strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// Validate checks cfg the way Load does.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateWindows(config *Config) []string {
	var validationErrors []string
	names := make(map[string]bool)
	for i, w := range config.AllWindows() {
		field := "window"
		if i > 0 {
			field = fmt.Sprintf("windows[%d]", i-1)
		}
		if w.Name != "" {
			if names[w.Name] {
				validationErrors = append(validationErrors, fmt.Sprintf("%s.name %q is used by another window", field, w.Name))
			}
			names[w.Name] = true
		}
		validationErrors = append(validationErrors, validateWindow(field, w)...)
	}
	return validationErrors
}

func validateWindow(field string, w WindowConfig) []string {
	var validationErrors []string
	if err := entity.NewRect(w.X, w.Y, w.Width, w.Height).Validate(); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", field, err))
	}
	if _, err := entity.ParseStyleMask(w.Style); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", field, err))
	}
	if _, err := entity.ParseBackingMode(w.Backing); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", field, err))
	}
	switch w.Category {
	case "window", "panel":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("%s.category must be window or panel (got %q)", field, w.Category))
	}
	if w.InvisibleTitleBarHeight < 0 {
		validationErrors = append(validationErrors, field+".invisible_title_bar_height must be non-negative")
	}
	return append(validationErrors, validateKeybindings(field+".keybindings", w.Keybindings)...)
}

func validateSchemes(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool)
	for i, s := range config.Content.Schemes {
		field := fmt.Sprintf("content.schemes[%d]", i)
		if s.Name == "" {
			validationErrors = append(validationErrors, field+".name is required")
		} else if seen[s.Name] {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.name %q is registered twice", field, s.Name))
		}
		seen[s.Name] = true

		sources := 0
		if s.Dir != "" {
			sources++
		}
		if s.Archive != "" {
			sources++
		}
		if len(s.Pages) > 0 {
			sources++
		}
		if sources != 1 {
			validationErrors = append(validationErrors, field+" must set exactly one of dir, archive or pages")
		}
	}
	return validationErrors
}

func validateKeybindings(field string, bindings map[string]string) []string {
	var validationErrors []string
	for accel, action := range bindings {
		if _, err := entity.ParseAccelerator(accel); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", field, err))
		}
		if strings.TrimSpace(action) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.%s has no action", field, accel))
		}
	}
	return validationErrors
}
