package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	JWT        JWT
	LoggerMode LoggerMode
	Push       Push
	Realtime   Realtime
	Pagination Pagination
	Admin      Admin
}

type Server struct {
	Port            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// Database.Driver picks the backend for every store: "postgres" (bun) or "mongo".
type Database struct {
	Driver        string
	DSN           string
	MongoURI      string
	MongoDatabase string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

type JWT struct {
	Secret    string
	ExpiredIn int // minutes
}

type Push struct {
	Enabled         bool
	CredentialsFile string
}

type Realtime struct {
	WriteWait      time.Duration
	PongWait       time.Duration
	MaxMessageSize int64
	SendBuffer     int
}

type Pagination struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Admin.Usernames are granted the admin role when they register.
type Admin struct {
	Usernames []string
}

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverMongo {
		return nil, errors.New("database.driver must be postgres or mongo")
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 10*time.Second)
	v.SetDefault("server.shutdownTimeout", 30*time.Second)
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.mongoDatabase", "murmur")
	v.SetDefault("jwt.expiredIn", 60)
	v.SetDefault("loggerMode.level", "info")
	v.SetDefault("realtime.writeWait", 10*time.Second)
	v.SetDefault("realtime.pongWait", 60*time.Second)
	v.SetDefault("realtime.maxMessageSize", 512)
	v.SetDefault("realtime.sendBuffer", 256)
	v.SetDefault("pagination.defaultPageSize", 20)
	v.SetDefault("pagination.maxPageSize", 100)
}
