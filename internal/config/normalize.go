package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCaptions()
	c.normalizePlayback()
	c.normalizeAPI()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if value, ok := os.LookupEnv("KOTOBA_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeCaptions() {
	c.Captions.PrimaryLanguage = strings.TrimSpace(c.Captions.PrimaryLanguage)
	if c.Captions.PrimaryLanguage == "" {
		c.Captions.PrimaryLanguage = defaultPrimaryLanguage
	}
	c.Captions.SecondaryLanguage = strings.TrimSpace(c.Captions.SecondaryLanguage)
	if c.Captions.SecondaryLanguage == "" {
		c.Captions.SecondaryLanguage = defaultSecondaryLanguage
	}
	if c.Captions.DefaultDurationSeconds == 0 {
		c.Captions.DefaultDurationSeconds = defaultCaptionDurationSeconds
	}
	c.Captions.AlignMode = strings.ToLower(strings.TrimSpace(c.Captions.AlignMode))
	if c.Captions.AlignMode == "" {
		c.Captions.AlignMode = defaultAlignMode
	}
}

func (c *Config) normalizePlayback() {
	if c.Playback.PollIntervalMS == 0 {
		c.Playback.PollIntervalMS = defaultPollIntervalMS
	}
	if c.Library.RecentLimit == 0 {
		c.Library.RecentLimit = defaultRecentLimit
	}
}

func (c *Config) normalizeAPI() {
	origins := make([]string, 0, len(c.API.AllowedOrigins))
	seen := make(map[string]struct{}, len(c.API.AllowedOrigins))
	for _, origin := range c.API.AllowedOrigins {
		normalized := strings.TrimRight(strings.TrimSpace(origin), "/")
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		origins = append(origins, normalized)
	}
	c.API.AllowedOrigins = origins
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("KOTOBA_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
