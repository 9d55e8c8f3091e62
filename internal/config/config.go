package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Oracle struct {
		Provider       string  `mapstructure:"provider"` // "openai" or "gemini"
		Model          string  `mapstructure:"model"`
		OpenaiApiKey   string  `mapstructure:"openai_api_key"`
		GoogleApiKey   string  `mapstructure:"google_api_key"`
		Temperature    float64 `mapstructure:"temperature"`
		MaxRetries     int     `mapstructure:"max_retries"`
		BackoffSeconds int     `mapstructure:"backoff_seconds"`
	} `mapstructure:"oracle"`

	Partition struct {
		CategoryCount      int    `mapstructure:"category_count"`
		SampleSize         int    `mapstructure:"sample_size"`
		StepCategoryAmount int    `mapstructure:"step_category_amount"`
		BatchSize          int    `mapstructure:"batch_size"`
		MaxDepth           int    `mapstructure:"max_depth"`
		UnassignedLabel    string `mapstructure:"unassigned_label"`
	} `mapstructure:"partition"`

	Prompts struct {
		ProposeTemplate string `mapstructure:"propose_template"` // path to an override template
		AssignTemplate  string `mapstructure:"assign_template"`
	} `mapstructure:"prompts"`
}

func setDefaults() {
	viper.SetDefault("oracle.provider", "openai")
	viper.SetDefault("oracle.model", "gpt-4o-mini")
	viper.SetDefault("oracle.temperature", 0.2)
	viper.SetDefault("oracle.max_retries", 3)
	viper.SetDefault("oracle.backoff_seconds", 1)

	viper.SetDefault("partition.category_count", 20)
	viper.SetDefault("partition.sample_size", 100)
	viper.SetDefault("partition.step_category_amount", 10)
	viper.SetDefault("partition.batch_size", 50)
	viper.SetDefault("partition.max_depth", 10)
	viper.SetDefault("partition.unassigned_label", "Unassigned")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	setDefaults()

	// Allow Viper to read environment variables. The API keys are the usual
	// suspects for env-only configuration, so bind them explicitly without
	// requiring a prefix.
	viper.AutomaticEnv()
	viper.BindEnv("oracle.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("oracle.google_api_key", "GEMINI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist; defaults and env vars
		// are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
