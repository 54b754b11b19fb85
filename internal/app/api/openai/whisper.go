package openai

import (
	"context"
	"fmt"
	"os"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"audio2text/internal/app/api"
)

const providerName = "openai"

// MaxUploadBytes is the request size limit of the OpenAI audio endpoint.
// Files over the limit are rejected before any network traffic.
const MaxUploadBytes = 25 << 20

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client   *goopenai.Client
	model    string
	timeout  time.Duration
	maxBytes int64
}

// NewRemoteTranscriber creates a transcriber bound to the given model
// identifier. The model is forwarded verbatim; the API validates it.
func NewRemoteTranscriber(client *goopenai.Client, model string, timeout time.Duration) *RemoteTranscriber {
	return &RemoteTranscriber{
		client:   client,
		model:    model,
		timeout:  timeout,
		maxBytes: MaxUploadBytes,
	}
}

// NewClient builds an OpenAI client from OPENAI_API_KEY.
func NewClient() (*goopenai.Client, error) {
	token, ok := os.LookupEnv("OPENAI_API_KEY")
	if !ok || token == "" {
		return nil, api.NewError(api.ErrAuthenticationFailed, providerName,
			"OPENAI_API_KEY environment variable not set", nil)
	}
	return goopenai.NewClient(token), nil
}

// Transcript uses the OpenAI API for remote transcription.
func (rt *RemoteTranscriber) Transcript(inputFilePath string) (string, error) {
	info, err := os.Stat(inputFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", api.NewError(api.ErrPathNotFound, providerName, inputFilePath, err)
		}
		return "", api.NewError(api.ErrIO, providerName, err.Error(), err)
	}
	if info.Size() > rt.maxBytes {
		return "", api.NewError(api.ErrPayloadTooLarge, providerName,
			fmt.Sprintf("%s is %d bytes, limit is %d", inputFilePath, info.Size(), rt.maxBytes), nil)
	}

	ctx := context.Background()
	if rt.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rt.timeout)
		defer cancel()
	}

	req := goopenai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", api.ClassifyOpenAIError(providerName, err)
	}

	return resp.Text, nil
}
