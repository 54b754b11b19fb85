package writer

import (
	"os"
	"path/filepath"

	"audio2text/internal/app/api"
)

// ResultWriter persists one transcript as a plain-text artifact.
type ResultWriter interface {
	// Write stores text as <baseName>.txt under outputDir, creating
	// the directory if absent, and returns the written path.
	Write(outputDir, baseName, text string) (string, error)
}

// FileWriter writes transcripts to the local filesystem.
type FileWriter struct{}

func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

func (w *FileWriter) Write(outputDir, baseName, text string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", api.NewError(api.ErrIO, "", "failed to create output directory: "+err.Error(), err)
	}

	outputPath := filepath.Join(outputDir, baseName+".txt")
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return "", api.NewError(api.ErrIO, "", "failed to write transcript: "+err.Error(), err)
	}

	return outputPath, nil
}
