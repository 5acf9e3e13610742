package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	port       string
	sqlitePath string

	recurHorizon int

	location *time.Location

	staticWebClientDir string

	metricCollectionInterval time.Duration
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		sqlitePath: func() string {
			sqlitePath := os.Getenv("SQLITE_PATH")
			if sqlitePath == "" {
				sqlitePath = "./sqlite.db"
			}
			slog.Debug("env", "SQLITE_PATH", sqlitePath)
			return sqlitePath
		}(),

		recurHorizon: func() int {
			recurHorizonStr := os.Getenv("RECUR_HORIZON")
			if recurHorizonStr == "" {
				return 12
			}
			recurHorizon, err := strconv.Atoi(recurHorizonStr)
			if err != nil || recurHorizon < 1 {
				slog.Error("invalid RECUR_HORIZON", "value", recurHorizonStr)
				os.Exit(1)
			}
			slog.Debug("env", "RECUR_HORIZON", recurHorizon)
			return recurHorizon
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),

		staticWebClientDir: func() string {
			staticWebClientDir := os.Getenv("STATIC_WEB_CLIENT_DIR")
			if staticWebClientDir == "" {
				slog.Warn("STATIC_WEB_CLIENT_DIR is not set, not serving a web client")
				return ""
			}
			info, err := os.Stat(staticWebClientDir)
			if err != nil {
				slog.Error("can't get info of STATIC_WEB_CLIENT_DIR", "error", err)
				os.Exit(1)
			}
			if !info.IsDir() {
				slog.Error("STATIC_WEB_CLIENT_DIR is not a directory")
				os.Exit(1)
			}
			slog.Debug("env", "STATIC_WEB_CLIENT_DIR", staticWebClientDir)
			return filepath.Clean(staticWebClientDir)
		}(),

		metricCollectionInterval: func() time.Duration {
			intervalStr := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if intervalStr == "" {
				intervalStr = "1m"
			}
			interval, err := time.ParseDuration(intervalStr)
			if err != nil {
				slog.Error("invalid METRIC_COLLECTION_INTERVAL", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", interval)
			return interval
		}(),
	}
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get SQLITE_PATH env, default to ./sqlite.db
func (c *Config) GetSqlitePath() string {
	return c.sqlitePath
}

// Get RECUR_HORIZON env, default to 12; how many future occurrences one
// recurring creation generates
func (c *Config) GetRecurHorizon() int {
	return c.recurHorizon
}

// Get TIMEZONE env
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get STATIC_WEB_CLIENT_DIR env, blank when no web client is served
func (c *Config) GetStaticWebClientDir() string {
	return c.staticWebClientDir
}

// Get METRIC_COLLECTION_INTERVAL env, default to 1m
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}
