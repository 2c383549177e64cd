package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yml"

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	Environment string `yaml:"environment"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type KafkaConfig struct {
	Broker   string `yaml:"broker"`
	Topic    string `yaml:"topic"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dev   bool   `yaml:"dev"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Casbin   CasbinConfig   `yaml:"casbin"`
	Log      LogConfig      `yaml:"log"`
}

type Config struct {
	Port            string
	GinMode         string
	Environment     string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	TokenTTL        time.Duration
	OTPTTL          time.Duration
	OTPLength       int
	TwilioSID       string
	TwilioToken     string
	TwilioFrom      string
	KafkaBroker     string
	KafkaTopic      string
	KafkaUsername   string
	KafkaPassword   string
	CasbinModelPath string
	LogLevel        string
	LogDev          bool
}

// IsProduction reports whether cookies and logging should use production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the YAML file at CONFIG_PATH (or DefaultPath), after loading a
// .env file if one exists. Environment variables override secrets and addresses.
func Load() (*Config, error) {
	// .env is optional; real environment variables still apply without it
	_ = godotenv.Load()

	return LoadFile(env("CONFIG_PATH", DefaultPath))
}

// LoadFile builds a Config from the given YAML file plus environment overrides.
func LoadFile(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	applyDefaults(configFile)

	tokenTTL, err := time.ParseDuration(env("JWT_TTL", configFile.JWT.TTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(env("OTP_TTL", configFile.OTP.TTL))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	redisDB := configFile.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" {
		if redisDB, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}

	cfg := &Config{
		Port:            env("PORT", strconv.Itoa(configFile.App.Port)),
		GinMode:         env("GIN_MODE", configFile.App.GinMode),
		Environment:     env("APP_ENV", configFile.App.Environment),
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         redisDB,
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       env("JWT_ISSUER", configFile.JWT.Issuer),
		TokenTTL:        tokenTTL,
		OTPTTL:          otpTTL,
		OTPLength:       configFile.OTP.Length,
		TwilioSID:       env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:     env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:      env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		KafkaBroker:     env("KAFKA_BROKER", configFile.Kafka.Broker),
		KafkaTopic:      env("KAFKA_TOPIC", configFile.Kafka.Topic),
		KafkaUsername:   env("KAFKA_USERNAME", configFile.Kafka.Username),
		KafkaPassword:   env("KAFKA_PASSWORD", configFile.Kafka.Password),
		CasbinModelPath: env("CASBIN_MODEL_PATH", configFile.Casbin.ModelPath),
		LogLevel:        strings.ToLower(env("LOG_LEVEL", configFile.Log.Level)),
		LogDev:          env("LOG_DEV", strconv.FormatBool(configFile.Log.Dev)) == "true",
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must be set")
	}

	return cfg, nil
}

func applyDefaults(c *ConfigFile) {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.App.Environment == "" {
		c.App.Environment = "development"
	}
	if c.JWT.TTL == "" {
		c.JWT.TTL = "168h"
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "streamsvc"
	}
	if c.OTP.TTL == "" {
		c.OTP.TTL = "10m"
	}
	if c.OTP.Length == 0 {
		c.OTP.Length = 6
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "notifications.email"
	}
	if c.Casbin.ModelPath == "" {
		c.Casbin.ModelPath = "config/rbac_model.conf"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
