package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// readSecret reads a Docker secret from a file path specified by an env var
// with _FILE suffix. If FOO is already set directly, the file is skipped.
// If FOO_FILE is set, reads the file content and sets FOO.
func readSecret(envKey string) {
	if os.Getenv(envKey) != "" {
		return
	}
	fileKey := envKey + "_FILE"
	filePath := os.Getenv(fileKey)
	if filePath == "" {
		return
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return
	}
	val := strings.TrimSpace(string(data))
	os.Setenv(envKey, val)
}

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout int // seconds
}

func Load() (*Config, error) {
	// Read Docker Swarm secrets from _FILE env vars before Viper binds
	readSecret("GEMINI_API_KEY")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()
	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = viper.BindEnv("gemini.base_url", "GEMINI_BASE_URL")
	_ = viper.BindEnv("gemini.model", "GEMINI_MODEL")

	// Defaults
	viper.SetDefault("server.port", "3000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.timeout", 30)

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port:     viper.GetString("server.port"),
			Env:      viper.GetString("server.env"),
			LogLevel: viper.GetString("server.log_level"),
		},
		Gemini: GeminiConfig{
			APIKey:  viper.GetString("gemini.api_key"),
			BaseURL: viper.GetString("gemini.base_url"),
			Model:   viper.GetString("gemini.model"),
			Timeout: viper.GetInt("gemini.timeout"),
		},
	}

	return cfg, nil
}
