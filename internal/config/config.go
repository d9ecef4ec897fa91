package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	SessionSecret string
	AssistantURL  string
	AllowOrigin   string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8800"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "closetcircle.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./closetcircle.log"
	}
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-only-insecure-secret"
		log.Println("[config] SESSION_SECRET not set, using dev default")
	}
	assistant := os.Getenv("ASSISTANT_URL")
	if assistant == "" {
		assistant = "http://localhost:5005/webhooks/rest/webhook"
	}
	origin := os.Getenv("ALLOW_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, SessionSecret: secret, AssistantURL: assistant, AllowOrigin: origin}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s ASSISTANT_URL=%s ALLOW_ORIGIN=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.AssistantURL, cfg.AllowOrigin)
	return cfg
}
