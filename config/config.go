package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Assistant AssistantConfig
	Scheduler SchedulerConfig
	Log       LogConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// AssistantConfig points at the consultation assistant service
// (treatment suggestions and follow-up chat).
type AssistantConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SchedulerConfig points at the scheduler service
// (doctor/patient directory and slot suggestions).
type SchedulerConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	// Request timeouts are a transport concern; the controllers themselves
	// never time anything out.
	assistantTimeout, err := time.ParseDuration(viper.GetString("ASSISTANT_TIMEOUT"))
	if err != nil {
		assistantTimeout = 60 * time.Second
	}

	schedulerTimeout, err := time.ParseDuration(viper.GetString("SCHEDULER_TIMEOUT"))
	if err != nil {
		schedulerTimeout = 15 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Assistant: AssistantConfig{
			BaseURL: viper.GetString("ASSISTANT_BASE_URL"),
			Timeout: assistantTimeout,
		},
		Scheduler: SchedulerConfig{
			BaseURL: viper.GetString("SCHEDULER_BASE_URL"),
			Timeout: schedulerTimeout,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if config.Assistant.BaseURL == "" {
		config.Assistant.BaseURL = "http://localhost:5001"
	}
	if config.Scheduler.BaseURL == "" {
		config.Scheduler.BaseURL = "http://localhost:5002"
	}

	return config, nil
}
