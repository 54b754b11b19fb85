package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio2text/internal/app/api"
	"audio2text/internal/app/testutil"
	"audio2text/internal/app/writer"
)

func newTestDriver(transcriber *testutil.MockTranscriber, w writer.ResultWriter,
	dao *testutil.MockTranscriptionDAO) *Driver {
	return NewDriver(transcriber, w, dao, zap.NewNop(), api.EngineOpenAI)
}

func TestDriver_Run_AllSucceed(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	w := testutil.NewMockResultWriter()
	dao := testutil.NewMockTranscriptionDAO()
	driver := newTestDriver(transcriber, w, dao)

	jobs := []Job{
		{Path: "/audio/a.mp3", Model: "whisper-1", OutputDir: "out"},
		{Path: "/audio/b.wav", Model: "whisper-1", OutputDir: "out"},
	}

	summary := driver.Run(jobs, RunOptions{})

	assert.Equal(t, len(jobs), summary.Total())
	assert.Len(t, summary.Succeeded, 2)
	assert.Empty(t, summary.Failed)
	assert.False(t, summary.HasFailures())
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 2, transcriber.CallCount)
	assert.Len(t, w.Written, 2)
}

func TestDriver_Run_FailureIsolation(t *testing.T) {
	transcriber := testutil.NewMockTranscriber().
		WithError("/audio/b.wav", api.NewError(api.ErrRateLimited, "openai", "429 too many requests", nil))
	w := testutil.NewMockResultWriter()
	dao := testutil.NewMockTranscriptionDAO()
	driver := newTestDriver(transcriber, w, dao)

	jobs := []Job{
		{Path: "/audio/a.mp3", OutputDir: "out"},
		{Path: "/audio/b.wav", OutputDir: "out"},
		{Path: "/audio/c.mp3", OutputDir: "out"},
	}

	summary := driver.Run(jobs, RunOptions{})

	// The failing job never blocks the ones after it.
	assert.Equal(t, 3, transcriber.CallCount)
	assert.Equal(t, []string{"/audio/a.mp3", "/audio/c.mp3"}, summary.Succeeded)
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, "/audio/b.wav", summary.Failed[0].Path)
	assert.Equal(t, api.ErrRateLimited, summary.Failed[0].Kind)
	assert.True(t, summary.HasFailures())
	assert.Equal(t, len(jobs), summary.Total())
	assert.Equal(t, []string{"/audio/b.wav"}, summary.FailedPaths())
}

func TestDriver_Run_EmptyJobList(t *testing.T) {
	driver := newTestDriver(testutil.NewMockTranscriber(),
		testutil.NewMockResultWriter(), testutil.NewMockTranscriptionDAO())

	summary := driver.Run(nil, RunOptions{})

	assert.Equal(t, 0, summary.Total())
	assert.False(t, summary.HasFailures())
}

func TestDriver_Run_WriterFailureIsPerJobFailure(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	w := testutil.NewMockResultWriter().
		WithWriteError(api.NewError(api.ErrIO, "", "disk full", nil))
	dao := testutil.NewMockTranscriptionDAO()
	driver := newTestDriver(transcriber, w, dao)

	jobs := []Job{{Path: "/audio/a.mp3", OutputDir: "out"}}
	summary := driver.Run(jobs, RunOptions{})

	require.Len(t, summary.Failed, 1)
	assert.Equal(t, api.ErrIO, summary.Failed[0].Kind)
}

func TestDriver_Run_BackendPanicIsContained(t *testing.T) {
	transcriber := testutil.NewMockTranscriber().WithPanic("/audio/bad.mp3")
	driver := newTestDriver(transcriber, testutil.NewMockResultWriter(), testutil.NewMockTranscriptionDAO())

	jobs := []Job{
		{Path: "/audio/bad.mp3", OutputDir: "out"},
		{Path: "/audio/good.mp3", OutputDir: "out"},
	}

	summary := driver.Run(jobs, RunOptions{})

	require.Len(t, summary.Failed, 1)
	assert.Equal(t, api.ErrUnknown, summary.Failed[0].Kind)
	assert.Equal(t, []string{"/audio/good.mp3"}, summary.Succeeded)
}

func TestDriver_Run_SkipProcessed(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	dao := testutil.NewMockTranscriptionDAO().WithProcessed("done.mp3", 7)
	driver := newTestDriver(transcriber, testutil.NewMockResultWriter(), dao)

	jobs := []Job{
		{Path: "/audio/done.mp3", OutputDir: "out"},
		{Path: "/audio/new.mp3", OutputDir: "out"},
	}

	summary := driver.Run(jobs, RunOptions{SkipProcessed: true})

	assert.Equal(t, []string{"/audio/done.mp3"}, summary.Skipped)
	assert.Equal(t, []string{"/audio/new.mp3"}, summary.Succeeded)
	assert.Equal(t, 1, transcriber.CallCount)
	assert.Equal(t, len(jobs), summary.Total())
}

func TestDriver_Run_RecordsHistory(t *testing.T) {
	transcriber := testutil.NewMockTranscriber().
		WithError("/audio/b.wav", api.NewError(api.ErrNetwork, "openai", "connection reset", nil))
	dao := testutil.NewMockTranscriptionDAO()
	driver := newTestDriver(transcriber, testutil.NewMockResultWriter(), dao)

	jobs := []Job{
		{Path: "/audio/a.mp3", Model: "whisper-1", OutputDir: "out"},
		{Path: "/audio/b.wav", Model: "whisper-1", OutputDir: "out"},
	}
	driver.Run(jobs, RunOptions{})

	records, err := dao.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.False(t, records[0].HasError)
	assert.Equal(t, "a.mp3", records[0].FileName)
	assert.True(t, records[1].HasError)
	assert.Equal(t, string(api.ErrNetwork), records[1].ErrorKind)
}

func TestDriver_Run_HistoryFailureDoesNotFailJob(t *testing.T) {
	dao := testutil.NewMockTranscriptionDAO()
	dao.RecordError = assert.AnError
	driver := newTestDriver(testutil.NewMockTranscriber(), testutil.NewMockResultWriter(), dao)

	summary := driver.Run([]Job{{Path: "/audio/a.mp3", OutputDir: "out"}}, RunOptions{})

	assert.Len(t, summary.Succeeded, 1)
	assert.Empty(t, summary.Failed)
}

func TestDriver_Run_IdempotentOutputs(t *testing.T) {
	tempDir := t.TempDir()
	inputDir := filepath.Join(tempDir, "audio")
	outputDir := filepath.Join(tempDir, "transcripts")
	touch(t, filepath.Join(inputDir, "a.mp3"))
	touch(t, filepath.Join(inputDir, "b.wav"))

	run := func() map[string][]byte {
		transcriber := testutil.NewMockTranscriber().
			WithResponse(filepath.Join(inputDir, "a.mp3"), "alpha transcript").
			WithResponse(filepath.Join(inputDir, "b.wav"), "bravo transcript")
		driver := newTestDriver(transcriber, writer.NewFileWriter(), testutil.NewMockTranscriptionDAO())

		jobs, err := Enumerate(inputDir, EnumerateOptions{OutputDir: outputDir})
		require.NoError(t, err)

		summary := driver.Run(jobs, RunOptions{})
		require.False(t, summary.HasFailures())

		outputs := make(map[string][]byte)
		entries, err := os.ReadDir(outputDir)
		require.NoError(t, err)
		for _, entry := range entries {
			data, err := os.ReadFile(filepath.Join(outputDir, entry.Name()))
			require.NoError(t, err)
			outputs[entry.Name()] = data
		}
		return outputs
	}

	first := run()
	second := run()

	assert.Equal(t, first, second)
	assert.Equal(t, []byte("alpha transcript"), first["a.txt"])
	assert.Equal(t, []byte("bravo transcript"), first["b.txt"])
}
