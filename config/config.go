package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	PublicURL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

type Config struct {
	Port           string
	AppEnv         string
	LogLevel       string
	MongoURI       string
	MongoDB        string
	RequestTimeout time.Duration
	CORSOrigin     string

	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
	ResetTokenSecret   string
	ResetTokenExpiry   time.Duration

	DefaultPageLimit int64
	MaxPageLimit     int64

	UploadDir string
	ClientURL string

	Minio MinioConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "videotube")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("cors_origin", "*")

	v.SetDefault("access_token_expiry", "24h")
	v.SetDefault("refresh_token_expiry", "240h")
	v.SetDefault("reset_token_expiry", "1h")

	v.SetDefault("default_page_limit", DefaultPageLimit)
	v.SetDefault("max_page_limit", MaxPageLimit)

	v.SetDefault("upload_dir", "./public/temp")
	v.SetDefault("client_url", "http://localhost:3000")

	v.SetDefault("minio_endpoint", "localhost:9000")
	v.SetDefault("minio_access_key", "minioadmin")
	v.SetDefault("minio_secret_key", "minioadmin")
	v.SetDefault("minio_use_ssl", false)
	v.SetDefault("minio_bucket", "videotube")
	v.SetDefault("minio_public_url", "http://localhost:9000")

	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("smtp_host", "smtp.gmail.com")
	v.SetDefault("smtp_port", "587")
	v.SetDefault("mail_from", "no-reply@videotube.local")
}

// LoadConfig reads .env, the process environment and an optional config.yml.
// Environment variables win over the file; keys are the upper-cased names
// (MONGO_URI, ACCESS_TOKEN_SECRET, ...).
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found, using system environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logrus.Warnf("config file error: %v", err)
		}
	} else {
		logrus.Infof("config file loaded: %s", v.ConfigFileUsed())
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Port:           v.GetString("port"),
		AppEnv:         v.GetString("app_env"),
		LogLevel:       v.GetString("log_level"),
		MongoURI:       v.GetString("mongo_uri"),
		MongoDB:        v.GetString("mongo_db"),
		RequestTimeout: v.GetDuration("request_timeout"),
		CORSOrigin:     v.GetString("cors_origin"),

		AccessTokenSecret:  v.GetString("access_token_secret"),
		AccessTokenExpiry:  v.GetDuration("access_token_expiry"),
		RefreshTokenSecret: v.GetString("refresh_token_secret"),
		RefreshTokenExpiry: v.GetDuration("refresh_token_expiry"),
		ResetTokenSecret:   v.GetString("reset_token_secret"),
		ResetTokenExpiry:   v.GetDuration("reset_token_expiry"),

		DefaultPageLimit: v.GetInt64("default_page_limit"),
		MaxPageLimit:     v.GetInt64("max_page_limit"),

		UploadDir: v.GetString("upload_dir"),
		ClientURL: v.GetString("client_url"),

		Minio: MinioConfig{
			Endpoint:  v.GetString("minio_endpoint"),
			AccessKey: v.GetString("minio_access_key"),
			SecretKey: v.GetString("minio_secret_key"),
			UseSSL:    v.GetBool("minio_use_ssl"),
			Bucket:    v.GetString("minio_bucket"),
			PublicURL: strings.TrimRight(v.GetString("minio_public_url"), "/"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("smtp_host"),
			Port:     v.GetString("smtp_port"),
			User:     v.GetString("smtp_user"),
			Password: v.GetString("smtp_password"),
			From:     v.GetString("mail_from"),
		},
	}
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	if c.AccessTokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if c.RefreshTokenSecret == "" {
		return errors.New("REFRESH_TOKEN_SECRET is required")
	}
	if c.ResetTokenSecret == "" {
		return errors.New("RESET_TOKEN_SECRET is required")
	}
	if c.DefaultPageLimit < 1 || c.MaxPageLimit < c.DefaultPageLimit {
		return errors.Errorf("invalid page limits: default=%d max=%d", c.DefaultPageLimit, c.MaxPageLimit)
	}
	if c.RequestTimeout <= 0 {
		return errors.Errorf("invalid REQUEST_TIMEOUT %s", c.RequestTimeout)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
