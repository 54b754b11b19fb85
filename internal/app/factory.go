package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"audio2text/internal/app/api"
	"audio2text/internal/app/api/azure"
	"audio2text/internal/app/api/openai"
	"audio2text/internal/app/api/whispercpp"
)

// BackendConfig carries everything needed to construct one backend.
type BackendConfig struct {
	Engine  api.Engine
	Model   string
	Timeout time.Duration

	// Local engine only.
	LocalBinary   string
	LocalModelDir string
}

// NewTranscriber maps the engine selector to a backend implementation.
// Strategy selection happens once at startup; the driver only ever
// sees the api.Transcriber contract.
func NewTranscriber(cfg BackendConfig, logger *zap.Logger) (api.Transcriber, error) {
	model := cfg.Model
	if model == "" {
		model = cfg.Engine.DefaultModel()
	}

	switch cfg.Engine {
	case api.EngineOpenAI:
		client, err := openai.NewClient()
		if err != nil {
			return nil, err
		}
		return openai.NewRemoteTranscriber(client, model, cfg.Timeout), nil

	case api.EngineAzure:
		client, err := azure.NewClient()
		if err != nil {
			return nil, err
		}
		return azure.NewDeploymentTranscriber(client, model, cfg.Timeout), nil

	case api.EngineLocal:
		if cfg.LocalBinary == "" {
			return nil, api.NewError(api.ErrModelUnavailable, "whisper_cpp",
				"whisper.cpp binary not configured (set WHISPER_CPP_BINARY or local.binary)", nil)
		}
		return whispercpp.NewLocalTranscriber(cfg.LocalBinary, cfg.LocalModelDir, model, logger)

	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}
