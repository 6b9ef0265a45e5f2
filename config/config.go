package config

import (
	"os"
)

// GetProvider returns the preferred LLM provider ("openai" or "gemini")
// from environment variable. Empty means auto-select by credential.
func GetProvider() string {
	return os.Getenv("LLM_PROVIDER")
}

// GetOpenAIModel returns the OpenAI model to use from environment variable
// Defaults to "gpt-4o-mini" if not set
func GetOpenAIModel() string {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		return "gpt-4o-mini"
	}
	return model
}

// GetGeminiModel returns the Gemini model to use from environment variable
// Defaults to "gemini-2.5-flash" if not set
func GetGeminiModel() string {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		// Default to flash model if not specified
		return "gemini-2.5-flash"
	}
	return model
}

// GetListenAddr returns the HTTP listen address from environment variable
// Defaults to ":8080" if not set
func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		return ":8080"
	}
	return addr
}

// GetAllowedOrigins returns the allowed CORS origins from environment variable
func GetAllowedOrigins() string {
	return os.Getenv("ALLOWED_ORIGINS")
}
