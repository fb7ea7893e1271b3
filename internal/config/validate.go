package config

import (
	"errors"
	"fmt"
	"strings"

	"kotoba/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCaptions(); err != nil {
		return err
	}
	if err := ensurePositiveMap(map[string]int{
		"playback.poll_interval_ms": c.Playback.PollIntervalMS,
		"library.recent_limit":      c.Library.RecentLimit,
	}); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCaptions() error {
	if language.Parse(c.Captions.PrimaryLanguage) == "" {
		return fmt.Errorf("captions.primary_language %q is not a recognized language", c.Captions.PrimaryLanguage)
	}
	if language.Parse(c.Captions.SecondaryLanguage) == "" {
		return fmt.Errorf("captions.secondary_language %q is not a recognized language", c.Captions.SecondaryLanguage)
	}
	if len(language.NormalizeList([]string{c.Captions.PrimaryLanguage, c.Captions.SecondaryLanguage})) != 2 {
		return errors.New("captions.primary_language and captions.secondary_language must differ")
	}
	if c.Captions.DefaultDurationSeconds <= 0 {
		return errors.New("captions.default_duration_seconds must be positive")
	}
	switch c.Captions.AlignMode {
	case "always", "on_mismatch":
	default:
		return fmt.Errorf("captions.align_mode must be \"always\" or \"on_mismatch\", got %q", c.Captions.AlignMode)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
