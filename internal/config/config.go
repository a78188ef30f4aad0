package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Environment string

	LLMProvider   string // openai | anthropic
	LLMBaseURL    string
	LLMAPIKey     string
	LLMModel      string
	LLMTimeoutSec int

	FuzzyMatchThreshold int
	LexiconPath         string
	LexiconWatch        bool
	ChatTimeoutSec      int
}

func FromEnv() Config {
	return Config{
		Environment: stringOrDefault("SHOPSENSE_ENV", "development"),

		LLMProvider:   stringOrDefault("SHOPSENSE_LLM_PROVIDER", "openai"),
		LLMBaseURL:    stringOrDefault("SHOPSENSE_LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:     strings.TrimSpace(os.Getenv("SHOPSENSE_LLM_API_KEY")),
		LLMModel:      stringOrDefault("SHOPSENSE_LLM_MODEL", "gpt-4o-mini"),
		LLMTimeoutSec: intOrDefault("SHOPSENSE_LLM_TIMEOUT_SECONDS", 60),

		FuzzyMatchThreshold: intOrDefault("SHOPSENSE_FUZZY_MATCH_THRESHOLD", 80),
		LexiconPath:         strings.TrimSpace(os.Getenv("SHOPSENSE_LEXICON_PATH")),
		LexiconWatch:        boolOrDefault("SHOPSENSE_LEXICON_WATCH", true),
		ChatTimeoutSec:      intOrDefault("SHOPSENSE_CHAT_TIMEOUT_SECONDS", 90),
	}
}

func stringOrDefault(name, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func intOrDefault(name string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}

func boolOrDefault(name string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
