package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Credentials holds the backend secrets loaded from environment.
// The batch driver never touches these; only backend construction does.
type Credentials struct {
	OpenAIKey     string
	AzureKey      string
	AzureEndpoint string
}

// LoadEnv loads environment variables from a .env file if one exists.
// A missing file is not an error: variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetCredentials retrieves backend credentials from environment
// variables, with basic format validation on keys that have a known
// shape.
func GetCredentials() (*Credentials, error) {
	creds := &Credentials{
		OpenAIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		AzureKey:      strings.TrimSpace(os.Getenv("AZURE_OPENAI_API_KEY")),
		AzureEndpoint: strings.TrimSpace(os.Getenv("AZURE_OPENAI_ENDPOINT")),
	}

	if creds.OpenAIKey != "" {
		if !strings.HasPrefix(creds.OpenAIKey, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(creds.OpenAIKey) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if creds.AzureEndpoint != "" && !strings.HasPrefix(creds.AzureEndpoint, "https://") {
		return nil, fmt.Errorf("invalid AZURE_OPENAI_ENDPOINT: must be an https URL")
	}

	return creds, nil
}

// InitializeConfig loads the .env file and reads credentials. Missing
// credentials are not fatal here: the chosen engine validates what it
// actually needs at construction time.
func InitializeConfig() (*Credentials, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	creds, err := GetCredentials()
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	return creds, nil
}
