// cmd/credlens/logger.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarning
	LogError
)

var logLevelStrings = map[LogLevel]string{
	LogDebug:   "DEBUG",
	LogInfo:    "INFO",
	LogWarning: "WARN",
	LogError:   "ERROR",
}

// Logger handles application logging to a rotating file plus stdout.
type AppLogger struct {
	logger   *log.Logger
	file     *os.File
	level    LogLevel
	filename string
	maxSize  int64
	mutex    sync.Mutex
}

var (
	logInstance *AppLogger
	logOnce     sync.Once
)

// InitLogger initializes the global logger instance
func InitLogger(logPath string, level LogLevel) error {
	var err error
	logOnce.Do(func() {
		logInstance, err = newLogger(logPath, level)
	})
	return err
}

// Logger returns the global logger instance. Before InitLogger runs
// (early startup, tests) it falls back to a stdout-only logger.
func Logger() *AppLogger {
	if logInstance == nil {
		logInstance = &AppLogger{
			logger: log.New(os.Stdout, "", log.LstdFlags),
			level:  LogInfo,
		}
	}
	return logInstance
}

func newLogger(logPath string, level LogLevel) (*AppLogger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	l := &AppLogger{
		logger:   log.New(io.MultiWriter(file, os.Stdout), "", log.LstdFlags),
		file:     file,
		level:    level,
		filename: logPath,
		maxSize:  50 * 1024 * 1024, // 50MB
	}

	l.Info("Logger initialized")
	return l, nil
}

func (l *AppLogger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.rotateIfNeeded(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
	}

	l.logger.Printf("[%s] %s", logLevelStrings[level], fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func (l *AppLogger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

// Info logs an info message
func (l *AppLogger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

// Warning logs a warning message
func (l *AppLogger) Warning(format string, args ...interface{}) {
	l.log(LogWarning, format, args...)
}

// Error logs an error message
func (l *AppLogger) Error(format string, args ...interface{}) {
	l.log(LogError, format, args...)
}

// Printf logs at info level; kept for call sites that predate levels.
func (l *AppLogger) Printf(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

func (l *AppLogger) rotateIfNeeded() error {
	if l.file == nil {
		return nil
	}

	info, err := l.file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat log file: %v", err)
	}
	if info.Size() < l.maxSize {
		return nil
	}

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %v", err)
	}

	rotatedPath := fmt.Sprintf("%s.%s", l.filename, time.Now().Format("20060102-150405"))
	if err := os.Rename(l.filename, rotatedPath); err != nil {
		return fmt.Errorf("failed to rename log file: %v", err)
	}

	file, err := os.OpenFile(l.filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open new log file: %v", err)
	}

	l.logger.SetOutput(io.MultiWriter(file, os.Stdout))
	l.file = file
	return nil
}

// CleanOldLogs removes rotated log files older than the retention period.
// Called by the scheduler.
func (l *AppLogger) CleanOldLogs(retention time.Duration) error {
	if l.filename == "" {
		return nil
	}

	dir := filepath.Dir(l.filename)
	pattern := filepath.Base(l.filename) + ".*"

	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return fmt.Errorf("failed to list log files: %v", err)
	}

	now := time.Now()
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > retention {
			if err := os.Remove(file); err != nil {
				l.Warning("Failed to remove old log file %s: %v", file, err)
				continue
			}
			l.Info("Removed old log file: %s", file)
		}
	}

	return nil
}

// Close closes the logger and underlying file
func (l *AppLogger) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
