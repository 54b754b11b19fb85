package model

import "time"

// TranscriptionRecord is one row of the run history: the outcome of a
// single job, success or failure.
type TranscriptionRecord struct {
	ID            int64
	RunID         string
	Engine        string
	Model         string
	InputDir      string
	FileName      string
	OutputFile    string
	Transcription string
	HasError      bool
	ErrorKind     string
	ErrorMessage  string
	CreatedAt     time.Time
}
