package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Embedding backend sources selectable via config.
const (
	EmbeddingSourceNone   = "none"
	EmbeddingSourceOllama = "ollama"
	EmbeddingSourceOpenAI = "openai"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	DB         DBConfig
	Redis      RedisConfig
	Embedding  EmbeddingConfig
	Evaluation EvaluationConfig
	CacheTTLs  CacheTTLConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type EmbeddingConfig struct {
	Source string
	Ollama OllamaEmbeddingConfig
	OpenAI OpenAIEmbeddingConfig
}

type OllamaEmbeddingConfig struct {
	ServerURL string
	Model     string
}

type OpenAIEmbeddingConfig struct {
	APIKey string
	Model  string
}

type EvaluationConfig struct {
	// Threshold is the classification cutoff: a domain counts as a
	// positive prediction when its score is >= Threshold. Distinct from
	// the fixed verdict cutoffs.
	Threshold  float64
	BankPath   string
	ReportPath string
}

type CacheTTLConfig struct {
	Embedding string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("embedding.source", EmbeddingSourceNone)
	viper.SetDefault("evaluation.threshold", 0.9)
	viper.SetDefault("evaluation.bank_path", "mcq_dataset.csv")
	viper.SetDefault("evaluation.report_path", "evaluation_table.csv")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Embedding: EmbeddingConfig{
			Source: viper.GetString("embedding.source"),
			Ollama: OllamaEmbeddingConfig{
				ServerURL: viper.GetString("embedding.ollama.server_url"),
				Model:     viper.GetString("embedding.ollama.model"),
			},
			OpenAI: OpenAIEmbeddingConfig{
				APIKey: viper.GetString("embedding.openai.api_key"),
				Model:  viper.GetString("embedding.openai.model"),
			},
		},
		Evaluation: EvaluationConfig{
			Threshold:  viper.GetFloat64("evaluation.threshold"),
			BankPath:   viper.GetString("evaluation.bank_path"),
			ReportPath: viper.GetString("evaluation.report_path"),
		},
		CacheTTLs: CacheTTLConfig{
			Embedding: viper.GetString("cache_ttls.embedding"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if source := os.Getenv("EMBEDDING_SOURCE"); source != "" {
		config.Embedding.Source = source
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.Embedding.OpenAI.APIKey = openAIKey
	}
	if serverURL := os.Getenv("OLLAMA_SERVER_URL"); serverURL != "" {
		config.Embedding.Ollama.ServerURL = serverURL
	}
	if bankPath := os.Getenv("MCQ_BANK_PATH"); bankPath != "" {
		config.Evaluation.BankPath = bankPath
	}

	return config, nil
}

// GetDSN builds the Oracle connection string.
func (c *Config) GetDSN() string {
	if c.DB.Host == "" {
		return ""
	}
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

// ParseTTLStringOrDefault parses a duration string, falling back to def on
// empty or malformed input.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	parsed, err := time.ParseDuration(ttl)
	if err != nil {
		return def
	}
	return parsed
}
