package gen

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"header-generator/internal/common"
)

// FileState is the comparison outcome for one generated file.
type FileState int

const (
	StateUpToDate FileState = iota
	StateStale
	StateMissing
)

// String returns a human-readable state name.
func (s FileState) String() string {
	switch s {
	case StateUpToDate:
		return "up-to-date"
	case StateStale:
		return "stale"
	case StateMissing:
		return "missing"
	default:
		return common.UnknownStr
	}
}

// FileStatus compares one generated file with its copy on disk.
type FileStatus struct {
	Path  string
	State FileState
	// Diffs are line-level differences from disk to generated text; set
	// only for stale files.
	Diffs []diffmatchpatch.Diff
}

// Check compares generated files with the output directory without writing
// anything. Read errors other than a missing file are returned.
func Check(files []GeneratedFile, outputDir string) ([]FileStatus, error) {
	dmp := diffmatchpatch.New()
	statuses := make([]FileStatus, 0, len(files))

	for _, file := range files {
		onDisk, err := os.ReadFile(filepath.Join(outputDir, filepath.FromSlash(file.Path)))
		if errors.Is(err, os.ErrNotExist) {
			statuses = append(statuses, FileStatus{Path: file.Path, State: StateMissing})
			continue
		}

		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file.Path)
		}

		if string(onDisk) == string(file.Content) {
			statuses = append(statuses, FileStatus{Path: file.Path, State: StateUpToDate})
			continue
		}

		a, b, lines := dmp.DiffLinesToChars(string(onDisk), string(file.Content))
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

		statuses = append(statuses, FileStatus{Path: file.Path, State: StateStale, Diffs: diffs})
	}

	return statuses, nil
}

// UpToDate reports whether every status is StateUpToDate.
func UpToDate(statuses []FileStatus) bool {
	for _, s := range statuses {
		if s.State != StateUpToDate {
			return false
		}
	}

	return true
}
