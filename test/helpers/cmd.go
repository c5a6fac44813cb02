package helpers

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"testing"
)

const modulePath = "github.com/ljfranklin/process-api-plugins"

// BuildMain compiles cmd/<name> into tmpDir and returns the binary path.
func BuildMain(tmpDir string, name string) string {
	mainPath := filepath.Join(tmpDir, name)
	cmd := exec.Command("go", "build", "-o", mainPath, modulePath+"/cmd/"+name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		panic(fmt.Sprintf("failed to build main.go: %s, %s", err, string(output)))
	}

	return mainPath
}

type CmdResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// RunMain runs the binary with exactly env as its environment.
func RunMain(t *testing.T, mainPath string, env []string, args ...string) CmdResult {
	t.Helper()

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}
	cmd := exec.Command(mainPath, args...)
	cmd.Env = env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CmdResult{}
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run %s: %s", mainPath, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	return result
}
