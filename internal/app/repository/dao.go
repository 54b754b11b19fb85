package repository

import (
	"audio2text/internal/app/model"
)

// TranscriptionDAO stores per-job outcomes so runs can be exported and
// already-done files can be skipped on request.
type TranscriptionDAO interface {
	Close() error

	// Record inserts one job outcome.
	Record(rec model.TranscriptionRecord) error

	// CheckIfFileProcessed returns the row id of an earlier successful
	// transcription of fileName, or an error when there is none.
	CheckIfFileProcessed(fileName string) (int64, error)

	// GetAll returns the full history, newest first.
	GetAll() ([]model.TranscriptionRecord, error)
}
