package openai

import (
	"os"
	"path/filepath"
	"testing"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio2text/internal/app/api"
)

func TestNewClient_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	client, err := NewClient()
	assert.Nil(t, client)
	require.Error(t, err)
	assert.Equal(t, api.ErrAuthenticationFailed, api.KindOf(err))
}

func TestNewClient_WithKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-0123456789abcdef")

	client, err := NewClient()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestTranscript_MissingFile(t *testing.T) {
	rt := NewRemoteTranscriber(goopenai.NewClient("sk-test"), "whisper-1", 0)

	text, err := rt.Transcript(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.Empty(t, text)
	assert.Equal(t, api.ErrPathNotFound, api.KindOf(err))
}

func TestTranscript_PayloadTooLarge(t *testing.T) {
	tempDir := t.TempDir()
	bigFile := filepath.Join(tempDir, "big.mp3")
	require.NoError(t, os.WriteFile(bigFile, make([]byte, 128), 0o644))

	rt := NewRemoteTranscriber(goopenai.NewClient("sk-test"), "whisper-1", 0)
	rt.maxBytes = 64 // shrink the limit so the test file trips it

	text, err := rt.Transcript(bigFile)
	assert.Empty(t, text)
	// Rejected before any network traffic.
	assert.Equal(t, api.ErrPayloadTooLarge, api.KindOf(err))
}
