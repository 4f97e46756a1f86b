package gen

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"header-generator/internal/logger"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files below the output directory,
// creating package sub directories as needed. The first failure is
// returned; files written before it stay on disk.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		outputPath := filepath.Join(outputDir, filepath.FromSlash(file.Path))

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return errors.Wrapf(err, "creating directory for %s", file.Path)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return errors.Wrapf(err, "writing file %s", file.Path)
		}

		logger.Logger.Debugw("Wrote file", logger.FieldFile, outputPath, logger.FieldBytes, len(file.Content))
	}

	return nil
}
