package azure

import (
	"context"
	"fmt"
	"os"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"audio2text/internal/app/api"
)

const providerName = "azure"

// apiVersion pins the Azure OpenAI REST API version the whisper
// deployments were validated against.
const apiVersion = "2024-02-15-preview"

// MaxUploadBytes matches the Azure OpenAI audio endpoint request limit.
const MaxUploadBytes = 25 << 20

// DeploymentTranscriber implements remote transcription against an
// Azure OpenAI whisper deployment. The model identifier is the
// deployment name, not an OpenAI model name.
type DeploymentTranscriber struct {
	client     *goopenai.Client
	deployment string
	timeout    time.Duration
	maxBytes   int64
}

// NewDeploymentTranscriber creates a transcriber bound to one deployment.
func NewDeploymentTranscriber(client *goopenai.Client, deployment string, timeout time.Duration) *DeploymentTranscriber {
	return &DeploymentTranscriber{
		client:     client,
		deployment: deployment,
		timeout:    timeout,
		maxBytes:   MaxUploadBytes,
	}
}

// NewClient builds an Azure OpenAI client from AZURE_OPENAI_API_KEY and
// AZURE_OPENAI_ENDPOINT.
func NewClient() (*goopenai.Client, error) {
	key := os.Getenv("AZURE_OPENAI_API_KEY")
	endpoint := os.Getenv("AZURE_OPENAI_ENDPOINT")
	if key == "" || endpoint == "" {
		return nil, api.NewError(api.ErrAuthenticationFailed, providerName,
			"AZURE_OPENAI_API_KEY and AZURE_OPENAI_ENDPOINT environment variables must be set", nil)
	}

	cfg := goopenai.DefaultAzureConfig(key, endpoint)
	cfg.APIVersion = apiVersion
	return goopenai.NewClientWithConfig(cfg), nil
}

// Transcript submits the audio file to the configured deployment.
func (dt *DeploymentTranscriber) Transcript(inputFilePath string) (string, error) {
	info, err := os.Stat(inputFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", api.NewError(api.ErrPathNotFound, providerName, inputFilePath, err)
		}
		return "", api.NewError(api.ErrIO, providerName, err.Error(), err)
	}
	if info.Size() > dt.maxBytes {
		return "", api.NewError(api.ErrPayloadTooLarge, providerName,
			fmt.Sprintf("%s is %d bytes, limit is %d", inputFilePath, info.Size(), dt.maxBytes), nil)
	}

	ctx := context.Background()
	if dt.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dt.timeout)
		defer cancel()
	}

	req := goopenai.AudioRequest{
		Model:    dt.deployment,
		FilePath: inputFilePath,
	}
	resp, err := dt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", api.ClassifyOpenAIError(providerName, err)
	}

	return resp.Text, nil
}
