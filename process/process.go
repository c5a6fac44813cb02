package process

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

type Command struct {
	Name string
	Args []string
	Dir  string
	// Env is appended to the current process environment.
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

type ExecutionError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *ExecutionError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("command '%s' exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command '%s' failed: %s", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

//go:generate counterfeiter . Runner

type Runner interface {
	Run(Command) error
}

type Exec struct{}

func (Exec) Run(c Command) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	err := cmd.Run()
	if err != nil {
		execErr := &ExecutionError{Command: c.String(), Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}
		return execErr
	}
	return nil
}
