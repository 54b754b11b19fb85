package batch

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputBaseNames derives a collision-free output base name for every
// job. The base name is the input file stem; when two jobs share a
// stem (same name in nested folders, or same stem with different
// extensions) later jobs get a _2, _3, ... suffix in job order.
// Because the job list is sorted, the assignment is deterministic
// across runs over an unchanged folder.
func OutputBaseNames(jobs []Job) map[string]string {
	names := make(map[string]string, len(jobs))
	used := make(map[string]bool, len(jobs))

	for _, job := range jobs {
		stem := strings.TrimSuffix(filepath.Base(job.Path), filepath.Ext(job.Path))
		candidate := stem
		for n := 2; used[candidate]; n++ {
			candidate = fmt.Sprintf("%s_%d", stem, n)
		}
		used[candidate] = true
		names[job.Path] = candidate
	}

	return names
}
