package utils

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugStringConstant         = "debug"
	logLevelInfoStringConstant          = "info"
	logLevelWarnStringConstant          = "warn"
	logLevelErrorStringConstant         = "error"
	unsupportedLogLevelTemplateConstant = "unsupported log level: %s"
	logFileOpenErrorTemplateConstant    = "unable to open log file %s: %w"
	logTimestampLayoutConstant          = "2006-01-02 15:04:05"
	logLineSeparatorConstant            = " - "
	timestampEncoderKeyConstant         = "timestamp"
	levelEncoderKeyConstant             = "level"
	messageEncoderKeyConstant           = "message"
	logFilePermissionConstant           = 0o644
	defaultLogFilePathConstant          = "app.log"
)

// DefaultLogFilePath receives log lines when no file path is configured.
const DefaultLogFilePath = defaultLogFilePathConstant

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// LoggerSettings selects the level and sinks for a shared logger.
type LoggerSettings struct {
	Level       LogLevel
	LogFilePath string
	ConsoleSink zapcore.WriteSyncer
}

// LoggerFactory builds zap.Logger instances that tee every line to a
// console sink and an append-mode log file, both rendered as
// "timestamp - LEVEL - message".
type LoggerFactory struct{}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger honoring the requested settings. An
// empty file path falls back to DefaultLogFilePath; a nil console sink
// falls back to standard error.
func (factory *LoggerFactory) CreateLogger(settings LoggerSettings) (*zap.Logger, error) {
	requestedLevel := settings.Level
	if len(requestedLevel) == 0 {
		requestedLevel = LogLevelInfo
	}
	zapLogLevel, levelExists := logLevelMapping[requestedLevel]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLevel)
	}

	logFilePath := settings.LogFilePath
	if len(logFilePath) == 0 {
		logFilePath = DefaultLogFilePath
	}
	logFileHandle, openError := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePermissionConstant)
	if openError != nil {
		return nil, fmt.Errorf(logFileOpenErrorTemplateConstant, logFilePath, openError)
	}

	consoleSink := settings.ConsoleSink
	if consoleSink == nil {
		consoleSink = zapcore.Lock(os.Stderr)
	}

	lineEncoder := zapcore.NewConsoleEncoder(lineEncoderConfiguration())
	teeCore := zapcore.NewTee(
		zapcore.NewCore(lineEncoder, zapcore.Lock(zapcore.AddSync(logFileHandle)), zapLogLevel),
		zapcore.NewCore(lineEncoder, consoleSink, zapLogLevel),
	)

	return zap.New(teeCore), nil
}

func lineEncoderConfiguration() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          timestampEncoderKeyConstant,
		LevelKey:         levelEncoderKeyConstant,
		MessageKey:       messageEncoderKeyConstant,
		ConsoleSeparator: logLineSeparatorConstant,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime: func(entryTime time.Time, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString(entryTime.Format(logTimestampLayoutConstant))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
	}
}
