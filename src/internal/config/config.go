package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const defaultHTTPAddr = ":8080"
const defaultChannelID = "GreyApp"
const defaultChannelKey = "GreyhoundKey001"
const defaultLogLevel = "info"
const defaultReadTimeout = 15 * time.Second
const defaultShutdownTimeout = 10 * time.Second

type Config struct {
	HTTPAddr       string
	ChannelID      string
	ChannelKeyHash string
	// DefaultChannelKey reports that neither CHANNEL_KEY nor CHANNEL_KEY_HASH
	// was set, so the built-in key guards the API.
	DefaultChannelKey bool
	LogLevel          string
	ReadTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	readTimeout, err := durationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return Config{}, err
	}

	logLevel := strings.ToLower(stringEnv("LOG_LEVEL", defaultLogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", logLevel)
	}

	keyHash := stringEnv("CHANNEL_KEY_HASH", "")
	channelKey := stringEnv("CHANNEL_KEY", "")
	usingDefaultKey := keyHash == "" && channelKey == ""
	if keyHash == "" {
		if usingDefaultKey {
			channelKey = defaultChannelKey
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(channelKey), bcrypt.DefaultCost)
		if err != nil {
			return Config{}, fmt.Errorf("hash channel key: %w", err)
		}
		keyHash = string(hashed)
	} else if _, err := bcrypt.Cost([]byte(keyHash)); err != nil {
		return Config{}, fmt.Errorf("CHANNEL_KEY_HASH is not a bcrypt hash: %w", err)
	}

	return Config{
		HTTPAddr:          stringEnv("HTTP_ADDR", defaultHTTPAddr),
		ChannelID:         stringEnv("CHANNEL_ID", defaultChannelID),
		ChannelKeyHash:    keyHash,
		DefaultChannelKey: usingDefaultKey,
		LogLevel:          logLevel,
		ReadTimeout:       readTimeout,
		ShutdownTimeout:   shutdownTimeout,
	}, nil
}

func stringEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := stringEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
