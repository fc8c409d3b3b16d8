// Package log provides structured, colored logging for phrasegen.
//
// Nothing security-sensitive ever passes through here: entropy bytes,
// checksum bits and phrase words are never logged at any level. Only
// sizes, fingerprints and outcomes are.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers for different parts of the pipeline.
var (
	Wordlist zerolog.Logger
	Entropy  zerolog.Logger
	Mnemonic zerolog.Logger
	CLI      zerolog.Logger
)

func init() {
	// Default to colored console output on stderr so log lines never
	// mix with the generated phrase on stdout.
	Logger = NewConsoleLogger(os.Stderr, "warn")
	initComponentLoggers()
}

// Init initializes the logger with the given configuration.
// When file is non-empty, logs are written to both the console (colored
// or JSON depending on jsonOutput) and the file (always JSON).
func Init(level string, jsonOutput bool, file string) error {
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}

		var consoleWriter io.Writer
		if jsonOutput {
			consoleWriter = os.Stderr
		} else {
			consoleWriter = zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "15:04:05",
				NoColor:    false,
			}
		}

		multi := zerolog.MultiLevelWriter(consoleWriter, f)
		Logger = zerolog.New(multi).
			Level(parseLevel(level)).
			With().
			Timestamp().
			Logger()
	} else if jsonOutput {
		Logger = NewJSONLogger(os.Stderr, level)
	} else {
		Logger = NewConsoleLogger(os.Stderr, level)
	}

	initComponentLoggers()
	return nil
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    false,
	}
	return zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// NewJSONLogger creates a structured JSON logger.
func NewJSONLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// parseLevel converts a string level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// initComponentLoggers initializes loggers for each component.
func initComponentLoggers() {
	Wordlist = Logger.With().Str("component", "wordlist").Logger()
	Entropy = Logger.With().Str("component", "entropy").Logger()
	Mnemonic = Logger.With().Str("component", "mnemonic").Logger()
	CLI = Logger.With().Str("component", "cli").Logger()
}

// WithComponent returns a logger with a component field.
func WithComponent(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info logs an info message.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error logs an error message.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal logs a fatal message and exits.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}
