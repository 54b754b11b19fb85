package testutil

import (
	"path/filepath"
	"sync"
)

// MockResultWriter records writes in memory instead of touching disk.
type MockResultWriter struct {
	mu sync.Mutex

	WriteError error

	// Written maps derived output path to the transcript text.
	Written map[string]string
	Calls   []string
}

func NewMockResultWriter() *MockResultWriter {
	return &MockResultWriter{
		Written: make(map[string]string),
	}
}

// WithWriteError makes every Write fail with err.
func (m *MockResultWriter) WithWriteError(err error) *MockResultWriter {
	m.WriteError = err
	return m
}

func (m *MockResultWriter) Write(outputDir, baseName, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := filepath.Join(outputDir, baseName+".txt")
	m.Calls = append(m.Calls, path)
	if m.WriteError != nil {
		return "", m.WriteError
	}
	m.Written[path] = text
	return path, nil
}
