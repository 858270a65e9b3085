package db

import (
	"fmt"
	"time"

	"interview_backend/internal/platform/env"
)

// Supported values for Config.Driver.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the connection settings for the relational store.
// An empty Driver is treated as MySQL.
type Config struct {
	Driver       string
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string // Cloud SQL instance, connects over the /cloudsql unix socket
	SSLMode      string // postgres only
	SQLitePath   string

	ConnectTimeout  time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoadConfigFromEnv reads the database settings from DB_* variables.
// DB_PASSWORD has no default.
func LoadConfigFromEnv() Config {
	driver := env.GetEnvAsString("DB_DRIVER", DriverMySQL)
	return Config{
		Driver:          driver,
		User:            env.GetEnvAsString("DB_USER", "root"),
		Password:        env.GetEnvAsString("DB_PASSWORD", ""),
		Name:            env.GetEnvAsString("DB_NAME", "interview_master_db"),
		Host:            env.GetEnvAsString("DB_HOST", "localhost"),
		Port:            env.GetEnvAsString("DB_PORT", defaultPort(driver)),
		InstanceName:    env.GetEnvAsString("INSTANCE_CONNECTION_NAME", ""),
		SSLMode:         env.GetEnvAsString("DB_SSLMODE", "disable"),
		SQLitePath:      env.GetEnvAsString("DB_SQLITE_PATH", "interview_master.db"),
		ConnectTimeout:  env.GetEnvAsDuration("DB_CONNECT_TIMEOUT", 30*time.Second),
		MaxOpenConns:    env.GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    env.GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: env.GetEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
	}
}

func defaultPort(driver string) string {
	if driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

// BuildDSN returns the DSN that selects the configured database.
func BuildDSN(cfg Config) string {
	return buildDSN(cfg, cfg.Name)
}

// BuildServerDSN returns a DSN that connects to the server without selecting
// the configured database, so the database itself can be created.
// PostgreSQL always needs a database and uses the "postgres" maintenance one.
func BuildServerDSN(cfg Config) string {
	if cfg.Driver == DriverPostgres {
		return buildDSN(cfg, "postgres")
	}
	return buildDSN(cfg, "")
}

func buildDSN(cfg Config, name string) string {
	switch cfg.Driver {
	case DriverSQLite:
		return cfg.SQLitePath
	case DriverPostgres:
		host := cfg.Host
		if cfg.InstanceName != "" {
			host = "/cloudsql/" + cfg.InstanceName
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			host, cfg.User, cfg.Password, name, cfg.Port, cfg.SSLMode)
	default:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, name)
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, name)
	}
}
