package testutil

import (
	"sync"
)

// MockTranscriber is a configurable implementation of api.Transcriber
// for driver and CLI tests. Responses and errors can be set per path
// or as defaults; calls are tracked for assertion.
type MockTranscriber struct {
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error
	ResponseMap     map[string]string
	ErrorMap        map[string]error
	PanicOn         map[string]bool

	CallCount int
	Calls     []string
}

// NewMockTranscriber creates a MockTranscriber with a fixed default
// response, so repeated runs are deterministic.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "this is a mock transcription result",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
		PanicOn:         make(map[string]bool),
	}
}

// WithResponse sets the transcript returned for one input path.
func (m *MockTranscriber) WithResponse(path, text string) *MockTranscriber {
	m.ResponseMap[path] = text
	return m
}

// WithError makes the given input path fail.
func (m *MockTranscriber) WithError(path string, err error) *MockTranscriber {
	m.ErrorMap[path] = err
	return m
}

// WithPanic makes the given input path panic mid-call.
func (m *MockTranscriber) WithPanic(path string) *MockTranscriber {
	m.PanicOn[path] = true
	return m
}

// Transcript implements the api.Transcriber interface.
func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	m.mu.Lock()
	m.CallCount++
	m.Calls = append(m.Calls, inputFilePath)
	m.mu.Unlock()

	if m.PanicOn[inputFilePath] {
		panic("mock transcriber panic: " + inputFilePath)
	}
	if err, ok := m.ErrorMap[inputFilePath]; ok {
		return "", err
	}
	if m.DefaultError != nil {
		return "", m.DefaultError
	}
	if text, ok := m.ResponseMap[inputFilePath]; ok {
		return text, nil
	}
	return m.DefaultResponse, nil
}
