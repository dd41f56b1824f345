package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Database DatabaseConfig `mapstructure:"database"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Gemini   ProviderConfig `mapstructure:"gemini"`
	DeepSeek ProviderConfig `mapstructure:"deepseek"`
	Claude   ProviderConfig `mapstructure:"claude"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

type DatabaseConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	DBName      string `mapstructure:"dbname"`
	SSLMode     string `mapstructure:"sslmode"`
	UseInMemory bool   `mapstructure:"use_in_memory"`
}

type PipelineConfig struct {
	MoodWindow            int `mapstructure:"mood_window"`
	FatigueThresholdSecs  int `mapstructure:"fatigue_threshold_seconds"`
	FatigueCooldownSecs   int `mapstructure:"fatigue_cooldown_seconds"`
	GenerationTimeoutSecs int `mapstructure:"generation_timeout_seconds"`
}

type ProviderConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

func parseDatabaseURL(dbURL string) (DatabaseConfig, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return DatabaseConfig{}, err
	}

	password, _ := u.User.Password()
	port := 5432 // default PostgreSQL port
	if u.Port() != "" {
		fmt.Sscanf(u.Port(), "%d", &port)
	}

	// Remove leading slash from path to get database name
	dbName := strings.TrimPrefix(u.Path, "/")

	return DatabaseConfig{
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   dbName,
		SSLMode:  "disable",
	}, nil
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.use_in_memory", false)
	v.SetDefault("pipeline.mood_window", 5)
	v.SetDefault("pipeline.fatigue_threshold_seconds", 120)
	v.SetDefault("pipeline.fatigue_cooldown_seconds", 300)
	v.SetDefault("pipeline.generation_timeout_seconds", 60)
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("deepseek.base_url", "https://api.deepseek.com/v1")
	v.SetDefault("deepseek.model", "deepseek-chat")
	v.SetDefault("deepseek.max_tokens", 1024)
	v.SetDefault("deepseek.temperature", 0.3)
	v.SetDefault("claude.model", "claude-3-5-sonnet")
	v.SetDefault("claude.max_tokens", 1024)
	v.SetDefault("claude.temperature", 0.7)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Check for DATABASE_URL environment variable
	if dbURL := v.GetString("DATABASE_URL"); dbURL != "" {
		dbConfig, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %v", err)
		}
		config.Database = dbConfig
	}

	// Get other environment variables
	if token := v.GetString("TELEGRAM_TOKEN"); token != "" {
		config.Telegram.Token = token
	}

	if apiKey := v.GetString("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}

	if apiKey := v.GetString("DEEPSEEK_API_KEY"); apiKey != "" {
		config.DeepSeek.APIKey = apiKey
	}

	if apiKey := v.GetString("CLAUDE_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}

	return &config, nil
}
