package batch

import (
	"github.com/samber/lo"

	"audio2text/internal/app/api"
)

// Job is one unit of work: a single audio file plus the options
// resolved for this run. Immutable once created.
type Job struct {
	Path      string // absolute input path
	Model     string // backend model identifier, forwarded verbatim
	OutputDir string
}

// Failure records one job that did not produce a transcript.
type Failure struct {
	Path    string
	Kind    api.ErrorKind
	Message string
}

// Summary is the aggregate outcome of a batch run. Entries appear in
// input (lexicographic) order.
type Summary struct {
	RunID     string
	Succeeded []string
	Failed    []Failure
	Skipped   []string
}

// Total is the number of jobs the run accounted for.
func (s *Summary) Total() int {
	return len(s.Succeeded) + len(s.Failed) + len(s.Skipped)
}

// HasFailures reports whether any job failed.
func (s *Summary) HasFailures() bool {
	return len(s.Failed) > 0
}

// FailedPaths lists the input paths of all failed jobs.
func (s *Summary) FailedPaths() []string {
	return lo.Map(s.Failed, func(f Failure, _ int) string {
		return f.Path
	})
}
