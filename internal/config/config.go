package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	StaticDir string
	LogFile   string
}

func Load() Config {
	// Local .env overrides are optional; real env always wins.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "partsdepot.db" // sqlite file in project root
	}
	static := os.Getenv("STATIC_DIR")
	if static == "" {
		static = "./web/static"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./partsdepot.log"
	}

	cfg := Config{Port: port, DBDSN: dsn, StaticDir: static, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s STATIC_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.StaticDir, cfg.LogFile)
	return cfg
}
