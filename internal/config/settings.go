package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is looked up in the working directory when no
// explicit config path is given.
const DefaultSettingsFile = "a2t.yaml"

// Settings are the run defaults an a2t.yaml file may provide. CLI
// flags override everything here.
type Settings struct {
	Engine        string `yaml:"engine"`
	Model         string `yaml:"model"`
	OutputDir     string `yaml:"output_dir"`
	Recursive     bool   `yaml:"recursive"`
	SkipProcessed bool   `yaml:"skip_processed"`

	// Remote call timeout in seconds; 0 disables the timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// HistoryDB is the sqlite file recording per-job outcomes.
	HistoryDB string `yaml:"history_db"`

	Local LocalSettings `yaml:"local"`
}

// LocalSettings configure the whisper.cpp backend.
type LocalSettings struct {
	Binary   string `yaml:"binary"`
	ModelDir string `yaml:"model_dir"`
}

// DefaultSettings returns the built-in defaults used when no config
// file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Engine:         "local",
		OutputDir:      "transcripts",
		TimeoutSeconds: 300,
		HistoryDB:      filepath.Join("data", "transcription.db"),
		Local: LocalSettings{
			Binary:   os.Getenv("WHISPER_CPP_BINARY"),
			ModelDir: os.Getenv("WHISPER_CPP_MODEL_DIR"),
		},
	}
}

// LoadSettings reads settings from path, falling back to defaults for
// anything the file leaves unset. A missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return settings, nil
}

// Timeout converts the configured timeout to a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}
