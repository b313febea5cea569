package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	fileLogger   *lumberjack.Logger
	fileLoggerMu sync.Mutex
)

// InitFileLogger opens the rotating log file in dir. Calling it again returns
// the already opened writer.
func InitFileLogger(dir, name string) (io.Writer, error) {
	fileLoggerMu.Lock()
	defer fileLoggerMu.Unlock()

	if fileLogger != nil {
		return fileLogger, nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fileLogger = &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    5, // MB per file
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	return fileLogger, nil
}

// FileLogPath returns the active log file path, or "" when file logging is off.
func FileLogPath() string {
	fileLoggerMu.Lock()
	defer fileLoggerMu.Unlock()

	if fileLogger == nil {
		return ""
	}
	return fileLogger.Filename
}

// CloseFileLogger closes the rotating log file (call on shutdown).
func CloseFileLogger() {
	fileLoggerMu.Lock()
	defer fileLoggerMu.Unlock()

	if fileLogger != nil {
		_ = fileLogger.Close()
		fileLogger = nil
	}
}
