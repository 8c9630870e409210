package config

import (
	"os"
	"strconv"
	"strings"

	"types-editor/internal/logger"

	"github.com/joho/godotenv"
)

const (
	DefaultTypesPath    = "db/types.xml"
	DefaultWindowWidth  = 1100
	DefaultWindowHeight = 700
	MinWindowWidth      = 800
	MinWindowHeight     = 600
)

// Config holds the settings read from the environment at startup
type Config struct {
	LogLevel     logger.LogLevel
	JSONLogs     bool
	MissionDir   string
	TypesPath    string
	WindowWidth  float32
	WindowHeight float32

	// DotEnvLoaded reports whether a .env file was found
	DotEnvLoaded bool
}

// Load reads an optional .env file and then the TYPES_EDITOR_* variables.
// Variables already present in the environment win over the .env file.
func Load() Config {
	err := godotenv.Load()
	cfg := FromEnv()
	cfg.DotEnvLoaded = err == nil
	return cfg
}

// FromEnv builds a Config from the process environment only
func FromEnv() Config {
	level := getenv("TYPES_EDITOR_LOG_LEVEL", "")
	if level == "" && os.Getenv("DEBUG") == "1" {
		level = "debug"
	}

	return Config{
		LogLevel:     logger.ParseLevel(level),
		JSONLogs:     getBool("TYPES_EDITOR_JSON_LOGS", false),
		MissionDir:   getenv("TYPES_EDITOR_MISSION_DIR", ""),
		TypesPath:    getenv("TYPES_EDITOR_TYPES_PATH", DefaultTypesPath),
		WindowWidth:  getSize("TYPES_EDITOR_WINDOW_WIDTH", DefaultWindowWidth, MinWindowWidth),
		WindowHeight: getSize("TYPES_EDITOR_WINDOW_HEIGHT", DefaultWindowHeight, MinWindowHeight),
	}
}

// NewLogger builds the application logger described by the config
func (c Config) NewLogger() logger.Logger {
	if c.JSONLogs {
		return logger.NewJSONLogger(c.LogLevel)
	}
	return logger.NewConsoleLogger(c.LogLevel)
}

func getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getenv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getSize(key string, fallback, minimum int) float32 {
	value, err := strconv.Atoi(getenv(key, ""))
	if err != nil {
		return float32(fallback)
	}
	if value < minimum {
		value = minimum
	}
	return float32(value)
}
