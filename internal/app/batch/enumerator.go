package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"audio2text/internal/app/api"
)

// supportedExtensions are the audio container formats accepted as
// input, matched case-insensitively on the file extension.
var supportedExtensions = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg", ".aac", ".mp4"}

// SupportedExtension reports whether path has a recognized audio
// extension.
func SupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return lo.Contains(supportedExtensions, ext)
}

// EnumerateOptions configure job discovery.
type EnumerateOptions struct {
	Model     string
	OutputDir string
	Recursive bool
}

// Enumerate turns a root path into the ordered job list for a run.
//
// A file root yields exactly one job, or an UnsupportedFormat error.
// A directory root yields every matching file, top-level only unless
// Recursive is set, sorted lexicographically by absolute path so runs
// are deterministic. A missing root is a PathNotFound error. Both
// error cases are fatal: they happen before any backend call.
func Enumerate(root string, opts EnumerateOptions) ([]Job, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, api.NewError(api.ErrPathNotFound, "", fmt.Sprintf("input path not found: %s", root), err)
		}
		return nil, api.NewError(api.ErrIO, "", err.Error(), err)
	}

	if !info.IsDir() {
		if !SupportedExtension(root) {
			return nil, api.NewError(api.ErrUnsupportedFormat, "",
				fmt.Sprintf("unsupported audio format: %s", filepath.Ext(root)), nil)
		}
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, api.NewError(api.ErrIO, "", err.Error(), err)
		}
		return []Job{{Path: abs, Model: opts.Model, OutputDir: opts.OutputDir}}, nil
	}

	paths, err := collectPaths(root, opts.Recursive)
	if err != nil {
		return nil, api.NewError(api.ErrIO, "", err.Error(), err)
	}

	sort.Strings(paths)

	return lo.Map(paths, func(p string, _ int) Job {
		return Job{Path: p, Model: opts.Model, OutputDir: opts.OutputDir}
	}), nil
}

func collectPaths(dir string, recursive bool) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	if recursive {
		err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && SupportedExtension(path) {
				paths = append(paths, path)
			}
			return nil
		})
		return paths, err
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() && SupportedExtension(entry.Name()) {
			paths = append(paths, filepath.Join(absDir, entry.Name()))
		}
	}
	return paths, nil
}
