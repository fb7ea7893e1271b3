package config

const (
	defaultDataDir                = "~/.local/share/kotoba"
	defaultLogDir                 = "~/.local/share/kotoba/logs"
	defaultAPIBind                = "127.0.0.1:7490"
	defaultPrimaryLanguage        = "ja"
	defaultSecondaryLanguage      = "zh"
	defaultCaptionDurationSeconds = 5.0
	defaultAlignMode              = "always"
	defaultPollIntervalMS         = 500
	defaultRecentLimit            = 10
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Captions: Captions{
			PrimaryLanguage:        defaultPrimaryLanguage,
			SecondaryLanguage:      defaultSecondaryLanguage,
			DefaultDurationSeconds: defaultCaptionDurationSeconds,
			AlignMode:              defaultAlignMode,
		},
		Playback: Playback{
			PollIntervalMS: defaultPollIntervalMS,
		},
		Library: Library{
			RecentLimit: defaultRecentLimit,
		},
		API: API{
			AllowedOrigins: []string{"http://localhost", "http://127.0.0.1"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
