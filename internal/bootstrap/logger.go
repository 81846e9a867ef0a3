package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/CrossBot_Go/internal/config"
	"github.com/osse101/CrossBot_Go/internal/logger"
)

// SetupLogger initializes the application logger. Records go to stdout and,
// when cfg.LogDir is set, to a fresh session file in that directory.
// Returns the log file handle (caller must close), nil when logging to stdout only.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	return setupLogger(cfg, version, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, version string, stdout io.Writer, now time.Time) (*os.File, error) {
	w := stdout
	var logFile *os.File
	var cleanErr error

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateLogDir, err)
		}

		cleanErr = cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(stdout, f)
	}

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		cfg.IsDevelopment(),
	), w)

	logger.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "dir", cfg.LogDir)
	if cleanErr != nil {
		slog.Warn(LogMsgLogCleanupFailed, "error", cleanErr)
	}
	logger.Info(LogMsgStarting, "environment", cfg.Environment, "version", version)
	slog.Debug(LogMsgConfigLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"announce_cron", cfg.AnnounceCron,
		"announce_timezone", cfg.AnnounceTimezone)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session file names embed their timestamp, so name order is age order.
func cleanupLogs(logDir string, keep int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return err
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}

	var errs []error
	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
