package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置（config.yaml + 环境变量覆盖）
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
	Otel     OtelConfig     `mapstructure:"otel"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"` // debug, release
	// AI 接口限流（令牌桶：每秒补充 AIRateLimit 个，桶容量 AIRateBurst）
	AIRateLimit float64 `mapstructure:"ai_rate_limit"`
	AIRateBurst int     `mapstructure:"ai_rate_burst"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite, postgres
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LLMConfig 文本生成服务与重试策略
type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	BaseDelay   time.Duration `mapstructure:"base_delay"`
	// fixed 或 exponential，默认 fixed
	Backoff string `mapstructure:"backoff"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

type OtelConfig struct {
	Endpoint string `mapstructure:"endpoint"` // OTLP HTTP，空则不启用
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load 读取配置：./config.yaml（可缺省）+ WELLNESS_ 前缀环境变量
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("WELLNESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 缺省值
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.ai_rate_limit", 5.0)
	v.SetDefault("server.ai_rate_burst", 10)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "wellness.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("llm.model", "gemini-1.5-flash-latest")
	v.SetDefault("llm.max_attempts", 3)
	v.SetDefault("llm.base_delay", time.Second)
	v.SetDefault("llm.backoff", "fixed")
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		// 配置文件可选，找不到时仅用缺省值与环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
