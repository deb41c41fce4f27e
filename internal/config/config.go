package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     string
	AuditDSN string
	MediaDir string
	LogFile  string

	// SettleInterval is how often the settlement loop scans for expired
	// auctions. ErodeInterval drives periodic credit erosion; zero
	// disables it.
	SettleInterval time.Duration
	ErodeInterval  time.Duration
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("AUDIT_DSN")
	if dsn == "" {
		dsn = "tradepost.db" // sqlite file in project root
	}
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./tradepost.log"
	}

	cfg := Config{
		Port:           port,
		AuditDSN:       dsn,
		MediaDir:       media,
		LogFile:        logFile,
		SettleInterval: seconds("SETTLE_INTERVAL", 60),
		ErodeInterval:  seconds("ERODE_INTERVAL", 0),
	}
	log.Printf("[config] PORT=%s AUDIT_DSN=%s MEDIA_DIR=%s LOG_FILE=%s SETTLE_INTERVAL=%s ERODE_INTERVAL=%s",
		cfg.Port, cfg.AuditDSN, cfg.MediaDir, cfg.LogFile, cfg.SettleInterval, cfg.ErodeInterval)
	return cfg
}

func seconds(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return time.Duration(n) * time.Second
		}
		log.Printf("[config] bad %s=%q, using default", key, v)
	}
	return time.Duration(def) * time.Second
}
