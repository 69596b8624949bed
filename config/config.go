package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	mongoURIEnv   = "MONGOCONNECTIONSTRING"
	databaseEnv   = "ITEMS_DATABASE"
	listenAddrEnv = "ITEMS_LISTEN_ADDR"
	logFileEnv    = "ITEMS_LOG_FILE"
)

const (
	defaultDatabase   = "items"
	defaultListenAddr = ":8080"
)

type Config struct {
	MongoURI   string
	Database   string
	ListenAddr string
	LogFile    string // empty means stdout only
}

// Load reads the configuration from the environment.
// The given env files are loaded first and must exist. Without any, an optional .env is loaded.
// Variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("could not load env files: %w", err)
	}

	uri, ok := os.LookupEnv(mongoURIEnv)
	if !ok || uri == "" {
		return Config{}, fmt.Errorf("environment variable %q must be set", mongoURIEnv)
	}

	return Config{
		MongoURI:   uri,
		Database:   getenv(databaseEnv, defaultDatabase),
		ListenAddr: getenv(listenAddrEnv, defaultListenAddr),
		LogFile:    os.Getenv(logFileEnv),
	}, nil
}

func getenv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
