package llm

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var providerEnvKeys = map[string]string{
	"openai": "OPENAI_API_KEY",
	"gemini": "GEMINI_API_KEY",
}

type credentialsFile struct {
	Credentials map[string]string `yaml:"credentials"`
}

// DefaultCredentialsPath returns the keyed secrets file location. It can be
// overridden with STORYCREW_CREDENTIALS_FILE.
func DefaultCredentialsPath() string {
	if path := os.Getenv("STORYCREW_CREDENTIALS_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".storycrew", "credentials.yaml")
}

// ResolveAPIKey looks up the key for a provider: secrets file first, then
// environment variable, then ErrMissingCredential. The lookup runs on every
// call; a failed lookup is never cached.
func ResolveAPIKey(provider string) (string, error) {
	key, err := resolveFromFile(provider)
	if err != nil {
		return "", err
	}
	if key != "" {
		return key, nil
	}

	if key := resolveFromEnv(provider); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("provider %q: %w", provider, ErrMissingCredential)
}

func resolveFromEnv(provider string) string {
	envKey, ok := providerEnvKeys[provider]
	if !ok {
		return ""
	}
	return os.Getenv(envKey)
}

func resolveFromFile(provider string) (string, error) {
	path := DefaultCredentialsPath()
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading credentials: %w", err)
	}

	var creds credentialsFile
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return "", fmt.Errorf("parsing credentials: %w", err)
	}

	return creds.Credentials[provider], nil
}

// HasCredentials reports whether a key resolves for the provider
func HasCredentials(provider string) bool {
	key, err := ResolveAPIKey(provider)
	return err == nil && key != ""
}

// EnvKeyName returns the environment variable consulted for a provider,
// used in setup-instruction messages.
func EnvKeyName(provider string) string {
	return providerEnvKeys[provider]
}
