package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"

	CounterBackendRedis    = "redis"
	CounterBackendMemory   = "memory"
	CounterBackendDisabled = "disabled"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Generation GenerationConfig
	Redis      RedisConfig
	Counter    CounterConfig
	Export     ExportConfig
}

type ServerConfig struct {
	Port         int
	BasePath     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
	CORSOrigins  string
}

type LoggerConfig struct {
	Env   string
	Level string
}

type GenerationConfig struct {
	Provider        string
	Model           string
	OpenAIAPIKey    string
	GeminiAPIKey    string
	OllamaServerURL string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CounterConfig struct {
	Backend   string
	BucketTTL time.Duration
}

type ExportConfig struct {
	Heading     string
	DefaultSlug string
}

// Credential returns the credential the configured provider needs, and the
// environment variable name it is read from. Ollama needs no credential but
// must have a server URL.
func (g GenerationConfig) Credential() (value string, name string) {
	switch g.Provider {
	case ProviderGemini:
		return g.GeminiAPIKey, "GEMINI_API_KEY"
	case ProviderOllama:
		return g.OllamaServerURL, "OLLAMA_SERVER_URL"
	default:
		return g.OpenAIAPIKey, "OPENAI_API_KEY"
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.base_path", "/api")
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 20)
	v.SetDefault("server.body_limit", 10*1024*1024)
	v.SetDefault("server.cors_origins", "*")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.ollama_server_url", "")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("counter.backend", "")
	v.SetDefault("counter.bucket_ttl", 7*24*time.Hour)

	v.SetDefault("export.heading", "TestForge Quiz Export")
	v.SetDefault("export.default_slug", "testforge-quiz")
}

// LoadConfig reads config.yaml (optional) and applies environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			BasePath:     v.GetString("server.base_path"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
			CORSOrigins:  v.GetString("server.cors_origins"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Generation: GenerationConfig{
			Provider:        strings.ToLower(v.GetString("llm.provider")),
			Model:           v.GetString("llm.model"),
			OpenAIAPIKey:    v.GetString("openai_api_key"),
			GeminiAPIKey:    v.GetString("gemini_api_key"),
			OllamaServerURL: v.GetString("llm.ollama_server_url"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Counter: CounterConfig{
			Backend:   strings.ToLower(v.GetString("counter.backend")),
			BucketTTL: v.GetDuration("counter.bucket_ttl"),
		},
		Export: ExportConfig{
			Heading:     v.GetString("export.heading"),
			DefaultSlug: v.GetString("export.default_slug"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		cfg.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}
	if basePath, ok := os.LookupEnv("SERVER_BASE_PATH"); ok {
		cfg.Server.BasePath = basePath
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.Generation.Provider = strings.ToLower(provider)
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		cfg.Generation.Model = model
	}
	if ollamaURL := os.Getenv("OLLAMA_SERVER_URL"); ollamaURL != "" {
		cfg.Generation.OllamaServerURL = ollamaURL
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if backend := os.Getenv("COUNTER_BACKEND"); backend != "" {
		cfg.Counter.Backend = strings.ToLower(backend)
	}

	if cfg.Counter.Backend == "" {
		cfg.Counter.Backend = CounterBackendMemory
		if cfg.Redis.Address != "" {
			cfg.Counter.Backend = CounterBackendRedis
		}
	}
	if cfg.Counter.BucketTTL <= 0 {
		cfg.Counter.BucketTTL = 7 * 24 * time.Hour
	}

	return cfg
}
