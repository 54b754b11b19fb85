package testutil

import (
	"database/sql"
	"sync"

	"audio2text/internal/app/model"
)

// MockTranscriptionDAO is an in-memory repository.TranscriptionDAO.
type MockTranscriptionDAO struct {
	mu sync.Mutex

	Records     []model.TranscriptionRecord
	RecordError error
	CloseError  error

	// Processed maps file names to row ids for CheckIfFileProcessed.
	Processed map[string]int64

	closeCalled bool
}

func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{
		Processed: make(map[string]int64),
	}
}

// WithCloseError makes Close return err.
func (m *MockTranscriptionDAO) WithCloseError(err error) *MockTranscriptionDAO {
	m.CloseError = err
	return m
}

// WithProcessed marks fileName as already successfully transcribed.
func (m *MockTranscriptionDAO) WithProcessed(fileName string, id int64) *MockTranscriptionDAO {
	m.Processed[fileName] = id
	return m
}

func (m *MockTranscriptionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalled = true
	return m.CloseError
}

func (m *MockTranscriptionDAO) WasCloseCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalled
}

func (m *MockTranscriptionDAO) Record(rec model.TranscriptionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordError != nil {
		return m.RecordError
	}
	rec.ID = int64(len(m.Records) + 1)
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockTranscriptionDAO) CheckIfFileProcessed(fileName string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.Processed[fileName]; ok {
		return id, nil
	}
	return 0, sql.ErrNoRows
}

func (m *MockTranscriptionDAO) GetAll() ([]model.TranscriptionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.TranscriptionRecord, len(m.Records))
	copy(out, m.Records)
	return out, nil
}
