package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// Logger handles all logging for the emulator
type Logger struct {
	level      LogLevel
	writer     io.Writer
	cpuEnabled bool
	busEnabled bool
}

var globalLogger *Logger

// Initialize sets up the global logger
func Initialize(level LogLevel, filename string) error {
	var writer io.Writer = os.Stdout

	if filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		writer = file
	}

	globalLogger = &Logger{
		level:      level,
		writer:     writer,
		cpuEnabled: true,
		busEnabled: false,
	}

	return nil
}

// SetCPULogging enables or disables CPU instruction logging
func SetCPULogging(enabled bool) {
	if globalLogger != nil {
		globalLogger.cpuEnabled = enabled
	}
}

// SetBusLogging enables or disables bus access logging
func SetBusLogging(enabled bool) {
	if globalLogger != nil {
		globalLogger.busEnabled = enabled
	}
}

// LogCPU logs CPU instruction execution and interrupt dispatch
func LogCPU(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.cpuEnabled && globalLogger.level >= LogLevelDebug {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] CPU: %s\n", timestamp, message)
	}
}

// LogBus logs bus attachment and fault events
func LogBus(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.busEnabled && globalLogger.level >= LogLevelTrace {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] BUS: %s\n", timestamp, message)
	}
}

// LogInfo logs general information
func LogInfo(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.level >= LogLevelInfo {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] INFO: %s\n", timestamp, message)
	}
}

// LogError logs errors
func LogError(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.level >= LogLevelError {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] ERROR: %s\n", timestamp, message)
	}
}

// LogDebug logs debug information
func LogDebug(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.level >= LogLevelDebug {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] DEBUG: %s\n", timestamp, message)
	}
}

// GetLogLevelFromString converts string to LogLevel
func GetLogLevelFromString(level string) LogLevel {
	switch level {
	case "off":
		return LogLevelOff
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	case "info":
		return LogLevelInfo
	case "debug":
		return LogLevelDebug
	case "trace":
		return LogLevelTrace
	default:
		return LogLevelInfo
	}
}

// Close closes the logger and any associated files
func Close() {
	if globalLogger != nil {
		if file, ok := globalLogger.writer.(*os.File); ok && file != os.Stdout && file != os.Stderr {
			file.Close()
		}
	}
}
