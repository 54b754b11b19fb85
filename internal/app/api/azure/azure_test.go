package azure

import (
	"os"
	"path/filepath"
	"testing"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio2text/internal/app/api"
)

func TestNewClient_MissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		endpoint string
	}{
		{name: "both_missing", key: "", endpoint: ""},
		{name: "key_only", key: "abc123", endpoint: ""},
		{name: "endpoint_only", key: "", endpoint: "https://res.openai.azure.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AZURE_OPENAI_API_KEY", tt.key)
			t.Setenv("AZURE_OPENAI_ENDPOINT", tt.endpoint)

			client, err := NewClient()
			assert.Nil(t, client)
			require.Error(t, err)
			assert.Equal(t, api.ErrAuthenticationFailed, api.KindOf(err))
		})
	}
}

func TestNewClient_WithCredentials(t *testing.T) {
	t.Setenv("AZURE_OPENAI_API_KEY", "abc123")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://res.openai.azure.com")

	client, err := NewClient()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestTranscript_MissingFile(t *testing.T) {
	cfg := goopenai.DefaultAzureConfig("abc123", "https://res.openai.azure.com")
	dt := NewDeploymentTranscriber(goopenai.NewClientWithConfig(cfg), "whisper", 0)

	text, err := dt.Transcript(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Empty(t, text)
	assert.Equal(t, api.ErrPathNotFound, api.KindOf(err))
}

func TestTranscript_PayloadTooLarge(t *testing.T) {
	tempDir := t.TempDir()
	bigFile := filepath.Join(tempDir, "big.wav")
	require.NoError(t, os.WriteFile(bigFile, make([]byte, 128), 0o644))

	cfg := goopenai.DefaultAzureConfig("abc123", "https://res.openai.azure.com")
	dt := NewDeploymentTranscriber(goopenai.NewClientWithConfig(cfg), "whisper", 0)
	dt.maxBytes = 64

	text, err := dt.Transcript(bigFile)
	assert.Empty(t, text)
	assert.Equal(t, api.ErrPayloadTooLarge, api.KindOf(err))
}
