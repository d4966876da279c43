package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Training TrainingConfig
	Uploads  UploadsConfig
	SQLite   SQLiteConfig
	Cache    CacheConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

type AIConfig struct {
	Provider    string
	Model       string
	APIKey      string
	Temperature float32
	MaxTokens   int
	TimeoutSec  int
}

type TrainingConfig struct {
	DataPath string
}

type UploadsConfig struct {
	Dir            string
	MaxFileSize    int
	MaxAgeHours    int
	CleanupMinutes int
}

type SQLiteConfig struct {
	Path string
}

type CacheConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Password   string
	DB         int
	TTLMinutes int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/a11y-agent")

	viper.SetEnvPrefix("A11Y_AGENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 60)
	viper.SetDefault("server.bodyLimit", 10485760)

	viper.SetDefault("ai.provider", "openai")
	viper.SetDefault("ai.model", "")
	viper.SetDefault("ai.temperature", 0.3)
	viper.SetDefault("ai.maxTokens", 2000)
	viper.SetDefault("ai.timeoutSec", 60)

	viper.SetDefault("training.dataPath", "./training-data.json")

	viper.SetDefault("uploads.dir", "./uploads")
	viper.SetDefault("uploads.maxFileSize", 10485760)
	viper.SetDefault("uploads.maxAgeHours", 24)
	viper.SetDefault("uploads.cleanupMinutes", 60)

	viper.SetDefault("sqlite.path", "./data/reports.db")

	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.host", "localhost")
	viper.SetDefault("cache.port", 6379)
	viper.SetDefault("cache.db", 0)
	viper.SetDefault("cache.ttlMinutes", 60)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
