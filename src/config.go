package src

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"hoteldesk_nlu/src/model"
)

// Config aggregates environment-sourced settings.
type Config struct {
	Log    model.LogConfig    `envconfig:""`
	Secret model.SecretConfig `envconfig:""`
}

// LoadConfig reads environment-sourced configuration.
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}
	return &config, nil
}

// FileConfig is the structure of config.yaml. It carries domain settings
// that are safe to version alongside the code.
type FileConfig struct {
	Language   model.LanguageConfig   `yaml:",inline"`
	Entities   model.EntityConfig     `yaml:"entities"`
	Classifier model.ClassifierConfig `yaml:"classifier"`
	Session    model.SessionConfig    `yaml:"session"`
}

// LoadFileConfig loads configuration from a YAML file and fills defaults for
// anything left unset.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

// DefaultFileConfig returns the built-in configuration used when no file is
// present.
func DefaultFileConfig() *FileConfig {
	var config FileConfig
	applyDefaults(&config)
	return &config
}

func applyDefaults(config *FileConfig) {
	if config.Language.DefaultLanguage == "" {
		config.Language.DefaultLanguage = "en"
	}
	if len(config.Language.SupportedLanguages) == 0 {
		config.Language.SupportedLanguages = []string{
			"en", "hi", "ta", "te", "kn", "lv", "ru", "si", "fr", "it", "de", "es",
		}
	}
	if config.Entities.DefaultRegion == "" {
		config.Entities.DefaultRegion = "IN"
	}
	if config.Classifier.Strategy == "" {
		config.Classifier.Strategy = "rules"
	}
	if config.Classifier.Model == "" {
		config.Classifier.Model = "openai/gpt-3.5-turbo"
	}
	if config.Classifier.MaxTokens == 0 {
		config.Classifier.MaxTokens = 100
	}
	if config.Classifier.Temperature == 0 {
		config.Classifier.Temperature = 0.3
	}
	if config.Classifier.TimeoutSeconds == 0 {
		config.Classifier.TimeoutSeconds = 10
	}
	if config.Session.Store == "" {
		config.Session.Store = "memory"
	}
	if config.Session.SweepIntervalSeconds == 0 {
		config.Session.SweepIntervalSeconds = 60
	}
}
