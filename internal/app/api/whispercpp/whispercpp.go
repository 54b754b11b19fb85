package whispercpp

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"audio2text/internal/app/api"
	"audio2text/internal/app/audio"
)

const providerName = "whisper_cpp"

// ValidModelSizes are the ggml model sizes resolvable under the model
// directory (ggml-<size>.bin).
var ValidModelSizes = []string{"tiny", "base", "small", "medium", "large"}

// LocalTranscriber implements local transcription by running a
// whisper.cpp binary. Inputs that are not already 16 kHz PCM WAV are
// converted through ffmpeg first.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	logger     *zap.Logger
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
// model may be a size name (tiny/base/small/medium/large) resolved
// inside modelDir, or a direct path to a ggml model file.
func NewLocalTranscriber(binaryPath, modelDir, model string, logger *zap.Logger) (*LocalTranscriber, error) {
	modelPath := model
	for _, size := range ValidModelSizes {
		if model == size {
			modelPath = filepath.Join(modelDir, "ggml-"+size+".bin")
			break
		}
	}

	if _, err := os.Stat(modelPath); err != nil {
		return nil, api.NewError(api.ErrModelUnavailable, providerName,
			fmt.Sprintf("model %q not found at %s", model, modelPath), err)
	}

	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		logger:     logger,
	}, nil
}

// Transcript runs the whisper.cpp binary against the input file and
// returns the transcribed text.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	lt.logger.Debug("starting local transcription", zap.String("file", inputFilePath))

	if _, err := os.Stat(inputFilePath); err != nil {
		if os.IsNotExist(err) {
			return "", api.NewError(api.ErrPathNotFound, providerName, inputFilePath, err)
		}
		return "", api.NewError(api.ErrIO, providerName, err.Error(), err)
	}

	is16kHzWav, err := audio.Is16kHzWav(inputFilePath)
	if err != nil {
		return "", classifyExecError(err, "ffprobe failed")
	}

	if !is16kHzWav {
		lt.logger.Debug("converting input to 16kHz wav", zap.String("file", inputFilePath))
		inputFilePath, err = audio.ConvertTo16kHzWav(inputFilePath, os.TempDir())
		if err != nil {
			return "", classifyExecError(err, "audio conversion failed")
		}
		defer os.Remove(inputFilePath)
	}

	outputDir, err := os.MkdirTemp("", "whispercpp")
	if err != nil {
		return "", api.NewError(api.ErrIO, providerName, err.Error(), err)
	}
	defer os.RemoveAll(outputDir)
	outputFile := filepath.Join(outputDir, "transcript")

	args := []string{
		"-m", lt.modelPath,
		"-otxt",
		"-f", inputFilePath,
		"-of", outputFile,
	}

	command := exec.Command(lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	lt.logger.Debug("running transcription command",
		zap.String("binary", lt.binaryPath), zap.Strings("args", args))

	if err := command.Run(); err != nil {
		return "", classifyExecError(err, stderr.String())
	}

	content, err := os.ReadFile(outputFile + ".txt")
	if err != nil {
		return "", api.NewError(api.ErrIO, providerName, "failed to read whisper output: "+err.Error(), err)
	}

	return strings.TrimSpace(string(content)), nil
}

func classifyExecError(err error, detail string) *api.TranscriptionError {
	if errors.Is(err, exec.ErrNotFound) {
		return api.NewError(api.ErrModelUnavailable, providerName,
			"required binary not found on PATH: "+err.Error(), err)
	}
	msg := err.Error()
	if detail != "" {
		msg = msg + ": " + detail
	}
	return api.NewError(api.ErrUnknown, providerName, msg, err)
}
