package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/gear-rental/internal/config"
	"github.com/iwvelando/gear-rental/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger from the logging section of the
// configuration. A non-empty levelOverride from the CLI wins over the
// configured level.
func initializeLogger(loggingConfig config.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if levelOverride != "" {
		level = levelOverride
	}
	if level == "" {
		level = constants.DefaultLogLevel
	}
	if level == "warning" {
		level = "warn"
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil || zapLevel < zapcore.DebugLevel || zapLevel > zapcore.ErrorLevel {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var zapConfig zap.Config
	switch loggingConfig.Format {
	case constants.LogFormatConsole:
		zapConfig = zap.NewDevelopmentConfig()
	case constants.LogFormatJSON, "":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", loggingConfig.Format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if path := loggingConfig.OutputFile; path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		zapConfig.OutputPaths = []string{path}
		zapConfig.ErrorOutputPaths = []string{path}
	}

	return zapConfig.Build()
}

// startupLogger writes JSON entries to w. It reports failures that happen
// before the configured logger exists.
func startupLogger(w io.Writer, opts ...zap.Option) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)
	return zap.New(core, opts...)
}

// errorLogger returns the logger a failed command is reported with.
func (a *app) errorLogger(w io.Writer, opts ...zap.Option) *zap.Logger {
	if a.logger != nil {
		return a.logger.WithOptions(opts...)
	}
	return startupLogger(w, opts...)
}

func main() {
	cmd, a := newRootCmd()
	if err := cmd.Execute(); err != nil {
		a.errorLogger(os.Stderr).Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}
}
