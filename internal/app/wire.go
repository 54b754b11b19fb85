//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"audio2text/internal/app/batch"
	"audio2text/internal/config"
)

// InitializeDriver assembles the batch driver for one run: settings →
// backend, writer and history store → driver.
func InitializeDriver(settings *config.Settings, logger *zap.Logger) (*batch.Driver, error) {
	wire.Build(
		provideBackendConfig,
		provideEngine,
		provideResultWriter,
		provideTranscriptionDAO,
		NewTranscriber,
		batch.NewDriver,
	)
	return nil, nil
}
