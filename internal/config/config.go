// Package config resolves runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvQuestions = "QUIZZER_QUESTIONS"
	EnvStrict    = "QUIZZER_STRICT"
	EnvLogFile   = "QUIZZER_LOG_FILE"
)

// Config holds runtime settings. Command-line flags override it.
type Config struct {
	// QuestionsFile is a JSON or YAML question set loaded at start-up.
	QuestionsFile string

	// Strict makes answers to unknown question ids an error.
	Strict bool

	// LogFile receives the log. Logging is discarded when empty.
	LogFile string
}

// Load reads a .env file from the working directory, if there is one, and
// then builds a Config from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		QuestionsFile: os.Getenv(EnvQuestions),
		LogFile:       os.Getenv(EnvLogFile),
	}

	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStrict, err)
		}
		cfg.Strict = strict
	}

	return cfg, nil
}
