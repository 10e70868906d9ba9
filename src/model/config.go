package model

// ----------------------------------------------------
// ================ Config ================

// LogConfig holds configuration for the global logger
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"console"`
	Output     string `envconfig:"LOG_OUTPUT" default:"stdout"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"rfc3339"`
	FilePath   string `envconfig:"LOG_FILE_PATH" default:"logs/hoteldesk.log"`
}

// SecretConfig holds environment-only settings that must never live in the
// YAML config file.
type SecretConfig struct {
	ClassifierAPIKey string `envconfig:"CLASSIFIER_API_KEY"`
	RedisURL         string `envconfig:"REDIS_URL"`
}

// LanguageConfig holds configuration for language detection and response
// localization.
type LanguageConfig struct {
	DefaultLanguage    string   `yaml:"default_language"`
	SupportedLanguages []string `yaml:"supported_languages"`
}

// ClassifierConfig holds configuration for the intent classification layer.
// Strategy selects the detector ("rules" or "keywords"); Provider selects the
// statistical backend for the rule strategy ("openai", "ollama", or empty for
// no backend).
type ClassifierConfig struct {
	Strategy       string  `yaml:"strategy"`
	Provider       string  `yaml:"provider"`
	Model          string  `yaml:"model"`
	BaseURL        string  `yaml:"base_url"`
	MaxTokens      int     `yaml:"max_tokens"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// EntityConfig holds configuration for entity extraction.
type EntityConfig struct {
	DefaultRegion string `yaml:"default_region"`
}

// SessionConfig holds configuration for the session registry. TTLSeconds of
// zero keeps sessions for the life of the process; MaxHistoryTurns of zero
// keeps unbounded per-session history (both match the baseline behavior).
type SessionConfig struct {
	Store                string `yaml:"store"`
	TTLSeconds           int    `yaml:"ttl_seconds"`
	SweepIntervalSeconds int    `yaml:"sweep_interval_seconds"`
	MaxHistoryTurns      int    `yaml:"max_history_turns"`
}
