package app

import (
	"os"
	"path/filepath"

	"audio2text/internal/app/api"
	"audio2text/internal/app/repository"
	"audio2text/internal/app/repository/sqlite"
	"audio2text/internal/app/writer"
	"audio2text/internal/config"
)

func provideBackendConfig(settings *config.Settings) BackendConfig {
	return BackendConfig{
		Engine:        api.Engine(settings.Engine),
		Model:         settings.Model,
		Timeout:       settings.Timeout(),
		LocalBinary:   settings.Local.Binary,
		LocalModelDir: settings.Local.ModelDir,
	}
}

func provideEngine(settings *config.Settings) api.Engine {
	return api.Engine(settings.Engine)
}

func provideResultWriter() writer.ResultWriter {
	return writer.NewFileWriter()
}

func provideTranscriptionDAO(settings *config.Settings) (repository.TranscriptionDAO, error) {
	if dir := filepath.Dir(settings.HistoryDB); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return sqlite.Open(settings.HistoryDB)
}
