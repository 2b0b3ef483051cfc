package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

const (
	repositoryRootConstant     = ".."
	integrationCommandTimeout  = 2 * time.Minute
	goToolNameConstant         = "go"
	runSubcommandConstant      = "run"
	modulePathArgumentConstant = "."
)

func runCLICommand(testInstance *testing.T, arguments []string) (string, error) {
	testInstance.Helper()

	executionContext, cancel := context.WithTimeout(context.Background(), integrationCommandTimeout)
	defer cancel()

	commandArguments := append([]string{runSubcommandConstant, modulePathArgumentConstant}, arguments...)
	command := exec.CommandContext(executionContext, goToolNameConstant, commandArguments...)
	command.Dir = repositoryRootConstant
	command.Env = os.Environ()

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

func temporaryLogFlag(testInstance *testing.T) []string {
	testInstance.Helper()
	return []string{"--log-file", filepath.Join(testInstance.TempDir(), "utilkit.log")}
}
