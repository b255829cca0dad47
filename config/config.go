package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Storage StorageConfig
	Prompt  PromptConfig
	Secret  SecretConfig
	// MenuFile is an optional YAML menu that replaces the built-in one.
	MenuFile string
	Debug    bool
}

type StorageConfig struct {
	Dir       string
	OrderFile string
	CountFile string
}

type PromptConfig struct {
	MaxAttempts   int // <= 0 means keep asking
	Confirmations int // "Selected: ..." lines printed per accepted choice
}

type SecretConfig struct {
	SaucePassword string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	maxAttempts, err := strconv.Atoi(getEnv("BURGER_MAX_ATTEMPTS", "3"))
	if err != nil {
		return nil, fmt.Errorf("BURGER_MAX_ATTEMPTS: %w", err)
	}
	confirmations, err := strconv.Atoi(getEnv("BURGER_CONFIRMATIONS", "1"))
	if err != nil {
		return nil, fmt.Errorf("BURGER_CONFIRMATIONS: %w", err)
	}

	return &Config{
		Storage: StorageConfig{
			Dir:       getEnv("BURGER_OUTPUT_DIR", "./tmp"),
			OrderFile: "burger.txt",
			CountFile: "burger_count.txt",
		},
		Prompt: PromptConfig{
			MaxAttempts:   maxAttempts,
			Confirmations: confirmations,
		},
		Secret: SecretConfig{
			SaucePassword: getEnv("SECRET_SAUCE_PASSWORD", ""),
		},
		MenuFile: getEnv("BURGER_MENU_FILE", ""),
		Debug:    isTrue(getEnv("BURGER_DEBUG", "")),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTrue(v string) bool {
	v = strings.TrimSpace(v)
	return v == "1" || strings.EqualFold(v, "true")
}
