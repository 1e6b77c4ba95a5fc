package config

const (
	defaultLogDir         = "~/.local/share/filezen/logs"
	defaultHistoryDB      = "~/.local/share/filezen/history.db"
	defaultOnCollision    = "rename"
	defaultMaxAgeDays     = 30
	defaultPollInterval   = 10
	defaultSettleSeconds  = 5
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultRetentionDays  = 30
	defaultHistoryEnabled = true
)

// Default returns a Config populated with repository defaults. The base
// directory intentionally has no default: every operation targets an
// explicit directory from config, flag, or argument.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Organize: Organize{
			SortBySize:  false,
			OnCollision: defaultOnCollision,
		},
		Cleanup: Cleanup{
			Enabled:    false,
			MaxAgeDays: defaultMaxAgeDays,
		},
		Watch: Watch{
			PollInterval:  defaultPollInterval,
			SettleSeconds: defaultSettleSeconds,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultRetentionDays,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
	}
}
