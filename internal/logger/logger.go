// Package logger owns the process-wide structured logger.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger. It is a no-op until Initialize is called.
	Logger *zap.SugaredLogger
	// JSONOutput tracks whether the last Initialize selected JSON output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger. JSON output uses the zap production
// encoder; otherwise a compact console encoder writes to stderr so generated
// text on stdout stays clean.
func Initialize(level zapcore.Level, jsonOutput bool) error {
	JSONOutput = jsonOutput

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}

		zapLogger, err := config.Build()
		if err != nil {
			return errors.Wrap(err, "building json logger")
		}

		Logger = zapLogger.Sugar()

		return nil
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	Logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)).Sugar()

	return nil
}

// ParseLevel parses a configured level name ("debug", "info", ...).
// An empty name selects InfoLevel.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}

	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(err, "log level %q", name)
	}

	return level, nil
}

// Sync flushes buffered log entries. Errors from syncing terminals are ignored.
func Sync() {
	_ = Logger.Sync()
}
