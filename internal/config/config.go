package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DevSecret is the token-signing key used when JWT_SECRET is unset.
// It keeps the API usable out of the box in development; running with it
// in production is unsafe, and Load logs a warning whenever it is in use.
const DevSecret = "dev-secret"

type Config struct {
	Port      string
	Env       string // "development" pins the store to the local JSON files
	MongoURI  string
	MongoDB   string
	DataDir   string
	JWTSecret string
	LogFile   string
}

// Local reports whether the process runs in local-only store mode:
// the remote store is never consulted and the JSON files are primary.
func (c Config) Local() bool { return c.Env == "development" }

func Load() Config {
	// .env is optional; real env vars win over file values.
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "production"
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "tienda"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = DevSecret
		log.Printf("[config] WARNING: JWT_SECRET not set, using development fallback key; do not deploy like this")
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, Env: env, MongoURI: mongoURI, MongoDB: mongoDB, DataDir: dataDir, JWTSecret: secret, LogFile: logFile}
	log.Printf("[config] PORT=%s APP_ENV=%s MONGO_DB=%s DATA_DIR=%s LOG_FILE=%s", cfg.Port, cfg.Env, cfg.MongoDB, cfg.DataDir, cfg.LogFile)
	return cfg
}
