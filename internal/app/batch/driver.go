package batch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"audio2text/internal/app/api"
	"audio2text/internal/app/model"
	"audio2text/internal/app/repository"
	"audio2text/internal/app/writer"
)

// Driver runs a job list against one backend, isolating per-job
// failures: a failed job is recorded and the loop moves on, it never
// aborts the batch.
type Driver struct {
	transcriber api.Transcriber
	writer      writer.ResultWriter
	db          repository.TranscriptionDAO
	logger      *zap.Logger
	engine      api.Engine
}

func NewDriver(transcriber api.Transcriber, resultWriter writer.ResultWriter,
	dao repository.TranscriptionDAO, logger *zap.Logger, engine api.Engine) *Driver {
	return &Driver{
		transcriber: transcriber,
		writer:      resultWriter,
		db:          dao,
		logger:      logger,
		engine:      engine,
	}
}

func (d *Driver) Close() error {
	return d.db.Close()
}

// RunOptions tune one batch run.
type RunOptions struct {
	// SkipProcessed skips jobs whose file name already has a
	// successful history row.
	SkipProcessed bool
	Progress      ProgressConfig
}

// Run processes every job in order and returns the aggregate summary.
// An empty job list yields a zero-count summary, not an error.
func (d *Driver) Run(jobs []Job, opts RunOptions) *Summary {
	summary := &Summary{RunID: uuid.NewString()}
	logger := d.logger.With(zap.String("run_id", summary.RunID), zap.String("engine", string(d.engine)))

	baseNames := OutputBaseNames(jobs)

	pm := newProgressManager(opts.Progress)
	bar := pm.createBar(len(jobs), "transcribing")

	for _, job := range jobs {
		if opts.SkipProcessed {
			if id, err := d.db.CheckIfFileProcessed(filepath.Base(job.Path)); err == nil {
				logger.Info("file already processed, skipping",
					zap.String("file", job.Path), zap.Int64("record_id", id))
				summary.Skipped = append(summary.Skipped, job.Path)
				bar.increment()
				continue
			}
		}

		outputPath, text, err := d.processJob(job, baseNames[job.Path])
		if err != nil {
			kind := api.KindOf(err)
			logger.Warn("job failed",
				zap.String("file", job.Path),
				zap.String("error_kind", string(kind)),
				zap.Error(err))
			summary.Failed = append(summary.Failed, Failure{
				Path:    job.Path,
				Kind:    kind,
				Message: err.Error(),
			})
			d.record(logger, summary.RunID, job, "", "", err)
			bar.increment()
			continue
		}

		logger.Info("job succeeded",
			zap.String("file", job.Path), zap.String("output", outputPath))
		summary.Succeeded = append(summary.Succeeded, job.Path)
		d.record(logger, summary.RunID, job, outputPath, text, nil)
		bar.increment()
	}

	bar.complete()
	pm.wait()

	logger.Info("batch finished",
		zap.Int("total", summary.Total()),
		zap.Int("succeeded", len(summary.Succeeded)),
		zap.Int("failed", len(summary.Failed)),
		zap.Int("skipped", len(summary.Skipped)))

	return summary
}

// processJob transcribes one file and writes its transcript. A panic
// inside the backend is contained here so it cannot take down the
// batch.
func (d *Driver) processJob(job Job, baseName string) (outputPath, text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = api.NewError(api.ErrUnknown, "", fmt.Sprintf("backend panic: %v", r), nil)
		}
	}()

	text, err = d.transcriber.Transcript(job.Path)
	if err != nil {
		return "", "", err
	}

	outputPath, err = d.writer.Write(job.OutputDir, baseName, text)
	if err != nil {
		return "", "", err
	}

	return outputPath, text, nil
}

// record writes the history row. History failures are diagnostics
// only; they never fail the job.
func (d *Driver) record(logger *zap.Logger, runID string, job Job, outputPath, text string, jobErr error) {
	rec := model.TranscriptionRecord{
		RunID:         runID,
		Engine:        string(d.engine),
		Model:         job.Model,
		InputDir:      filepath.Dir(job.Path),
		FileName:      filepath.Base(job.Path),
		OutputFile:    outputPath,
		Transcription: text,
		CreatedAt:     time.Now(),
	}
	if jobErr != nil {
		rec.HasError = true
		rec.ErrorKind = string(api.KindOf(jobErr))
		rec.ErrorMessage = jobErr.Error()
	}

	if err := d.db.Record(rec); err != nil {
		logger.Warn("failed to record history row",
			zap.String("file", job.Path), zap.Error(err))
	}
}
