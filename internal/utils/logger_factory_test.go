package utils_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/utilkit/internal/utils"
)

type memorySink struct {
	builder strings.Builder
}

func (sink *memorySink) Write(data []byte) (int, error) {
	return sink.builder.WriteString(string(data))
}

func (sink *memorySink) Sync() error {
	return nil
}

var logLinePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - [A-Z]+ - .+`)

func TestCreateLoggerWritesToFileAndConsole(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), "app.log")
	consoleSink := &memorySink{}

	factory := utils.NewLoggerFactory()
	logger, creationError := factory.CreateLogger(utils.LoggerSettings{
		Level:       utils.LogLevelInfo,
		LogFilePath: logFilePath,
		ConsoleSink: zapcore.Lock(consoleSink),
	})
	require.NoError(testInstance, creationError)

	logger.Info("helper initialized")
	logger.Error("helper failed")
	require.NoError(testInstance, logger.Sync())

	fileContents, readError := os.ReadFile(logFilePath)
	require.NoError(testInstance, readError)

	fileLines := strings.Split(strings.TrimSpace(string(fileContents)), "\n")
	require.Len(testInstance, fileLines, 2)
	require.Regexp(testInstance, logLinePattern, fileLines[0])
	require.Contains(testInstance, fileLines[0], " - INFO - helper initialized")
	require.Contains(testInstance, fileLines[1], " - ERROR - helper failed")

	require.Equal(testInstance, string(fileContents), consoleSink.builder.String())
}

func TestCreateLoggerAppendsAcrossInstances(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), "app.log")
	factory := utils.NewLoggerFactory()

	for _, message := range []string{"first run", "second run"} {
		logger, creationError := factory.CreateLogger(utils.LoggerSettings{
			Level:       utils.LogLevelInfo,
			LogFilePath: logFilePath,
			ConsoleSink: zapcore.Lock(&memorySink{}),
		})
		require.NoError(testInstance, creationError)
		logger.Info(message)
		require.NoError(testInstance, logger.Sync())
	}

	fileContents, readError := os.ReadFile(logFilePath)
	require.NoError(testInstance, readError)
	require.Contains(testInstance, string(fileContents), "first run")
	require.Contains(testInstance, string(fileContents), "second run")
}

func TestCreateLoggerHonorsMinimumLevel(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), "app.log")
	consoleSink := &memorySink{}

	factory := utils.NewLoggerFactory()
	logger, creationError := factory.CreateLogger(utils.LoggerSettings{
		Level:       utils.LogLevelInfo,
		LogFilePath: logFilePath,
		ConsoleSink: zapcore.Lock(consoleSink),
	})
	require.NoError(testInstance, creationError)

	logger.Debug("suppressed diagnostics")
	require.NoError(testInstance, logger.Sync())
	require.Empty(testInstance, consoleSink.builder.String())
}

func TestCreateLoggerRejectsUnknownLevel(testInstance *testing.T) {
	factory := utils.NewLoggerFactory()
	_, creationError := factory.CreateLogger(utils.LoggerSettings{
		Level:       utils.LogLevel("verbose"),
		LogFilePath: filepath.Join(testInstance.TempDir(), "app.log"),
	})
	require.Error(testInstance, creationError)
}

func TestCreateLoggerReportsUnwritableLogFile(testInstance *testing.T) {
	factory := utils.NewLoggerFactory()
	_, creationError := factory.CreateLogger(utils.LoggerSettings{
		Level:       utils.LogLevelInfo,
		LogFilePath: filepath.Join(testInstance.TempDir(), "missing", "app.log"),
	})
	require.Error(testInstance, creationError)
}
