package api

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcript(inputFilePath string) (string, error)
}

// Engine selects which transcription backend a run uses.
type Engine string

const (
	EngineLocal  Engine = "local"
	EngineOpenAI Engine = "openai"
	EngineAzure  Engine = "azure"
)

// ValidEngine reports whether s names a known engine.
func ValidEngine(s string) bool {
	switch Engine(s) {
	case EngineLocal, EngineOpenAI, EngineAzure:
		return true
	}
	return false
}

// DefaultModel returns the model identifier used when the caller does not
// pick one. For azure the model is the deployment name.
func (e Engine) DefaultModel() string {
	switch e {
	case EngineOpenAI:
		return "whisper-1"
	case EngineAzure:
		return "whisper"
	default:
		return "base"
	}
}
