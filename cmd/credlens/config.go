// cmd/credlens/config.go
package main

// Config holds application configuration. All remote integrations are
// optional: an empty key disables the corresponding adapter without
// failing the pipeline.
type Config struct {
	Version string `json:"version"`
	Port    int    `json:"port"`

	// Input limits
	MinContentLength int `json:"minContentLength"`
	MaxContentLength int `json:"maxContentLength"`

	// Paths
	SourcesPath string `json:"sourcesPath"`
	HistoryPath string `json:"historyPath"`
	LogPath     string `json:"logPath"`
	LogLevel    LogLevel

	// Remote API keys (empty = feature skipped)
	OpenAIAPIKey          string `json:"-"`
	GoogleFactCheckAPIKey string `json:"-"`
	NewsAPIKey            string `json:"-"`
	HFAPIKey              string `json:"-"`
	GrammarAPIKey         string `json:"-"`
	DomainAuthorityAPIKey string `json:"-"`

	// Discord alerting (optional)
	DiscordBotToken    string `json:"-"`
	DiscordChannelID   string `json:"discordChannelId"`
	AlertMinConfidence int    `json:"alertMinConfidence"`

	// Related coverage via Google News RSS (keyless)
	EnableCoverage bool `json:"enableCoverage"`

	// History retention
	HistoryRetentionDays int    `json:"historyRetentionDays"`
	PruneCronSchedule    string `json:"pruneCronSchedule"`

	UserAgentString string `json:"userAgentString"`
}

// LoadEnvConfig loads configuration from environment variables
func LoadEnvConfig() *Config {
	return &Config{
		Version:          GetEnvString("CREDLENS_VERSION", "1.0.0"),
		Port:             GetEnvInt("PORT", 8080),
		MinContentLength: GetEnvInt("MIN_CONTENT_LENGTH", 30),
		MaxContentLength: GetEnvInt("MAX_CONTENT_LENGTH", 20000),

		SourcesPath: GetEnvString("SOURCES_PATH", "config/sources.yml"),
		HistoryPath: GetEnvString("HISTORY_PATH", "data/history.json"),
		LogPath:     GetEnvString("LOG_PATH", "data/logs/credlens.log"),
		LogLevel:    parseLogLevel(GetEnvString("LOG_LEVEL", "info")),

		OpenAIAPIKey:          GetEnvString("OPENAI_API_KEY", ""),
		GoogleFactCheckAPIKey: GetEnvString("GOOGLE_FACT_CHECK_API_KEY", ""),
		NewsAPIKey:            GetEnvString("NEWS_API_KEY", ""),
		HFAPIKey:              GetEnvString("HF_API_KEY", ""),
		GrammarAPIKey:         GetEnvString("GRAMMAR_API_KEY", ""),
		DomainAuthorityAPIKey: GetEnvString("DOMAIN_AUTHORITY_API_KEY", ""),

		DiscordBotToken:    GetEnvString("DISCORD_BOT_TOKEN", ""),
		DiscordChannelID:   GetEnvString("DISCORD_CHANNEL_ID", ""),
		AlertMinConfidence: GetEnvInt("ALERT_MIN_CONFIDENCE", 75),

		EnableCoverage: GetEnvBool("ENABLE_COVERAGE", true),

		HistoryRetentionDays: GetEnvInt("HISTORY_RETENTION_DAYS", 30),
		PruneCronSchedule:    GetEnvString("PRUNE_CRON_SCHEDULE", "0 3 * * *"),

		UserAgentString: GetEnvString("USER_AGENT", "CredLens/1.0"),
	}
}

// HasEnsembleKeys reports whether any remote verdict engine is
// configured. The fusion step only takes the ensemble branch when
// this is true.
func (c *Config) HasEnsembleKeys() bool {
	return c.OpenAIAPIKey != "" || c.HFAPIKey != ""
}

func parseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LogDebug
	case "warn", "warning":
		return LogWarning
	case "error":
		return LogError
	default:
		return LogInfo
	}
}
