// Package cli wires a plugin into a cobra command that takes a single JSON
// payload argument and reports every failure at one boundary.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ljfranklin/process-api-plugins/config"
	"github.com/ljfranklin/process-api-plugins/envelope"
	"github.com/ljfranklin/process-api-plugins/process"
	"github.com/ljfranklin/process-api-plugins/run"
	"github.com/ljfranklin/process-api-plugins/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Env is handed to a plugin's Run func once flags and logging are set up.
type Env struct {
	Payload string
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  logrus.FieldLogger
}

type Spec struct {
	Name    string
	Short   string
	Example string
	Run     func(Env) error
}

type UsageError struct {
	Example string
	Got     int
}

func (u *UsageError) Error() string {
	return fmt.Sprintf("expected exactly one JSON payload argument but got %d, example usage: %s", u.Got, u.Example)
}

func NewCommand(spec Spec) *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:           fmt.Sprintf("%s '<json-payload>'", spec.Name),
		Short:         spec.Short,
		Example:       spec.Example,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &UsageError{Example: spec.Example, Got: len(args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := NewLogger(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return err
			}

			return spec.Run(Env{
				Payload: args[0],
				Stdout:  cmd.OutOrStdout(),
				Stderr:  cmd.ErrOrStderr(),
				Logger:  logger.WithField("plugin", spec.Name),
			})
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "json", "log format (json, text)")

	return cmd
}

func NewLogger(w io.Writer, level string, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(parsedLevel)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	default:
		return nil, fmt.Errorf("invalid log format '%s'", format)
	}

	return logger, nil
}

// Execute runs cmd and returns the process exit code. Failures are logged
// to the command's stderr with their category.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.WithError(err).WithFields(logrus.Fields{
		"plugin":     cmd.Name(),
		"error_type": ErrorType(err),
	}).Error("plugin failed")

	return 1
}

func ErrorType(err error) string {
	var (
		usageErr      *UsageError
		parseErr      *envelope.ParseError
		validationErr *envelope.ValidationError
		configErr     *config.ConfigError
		writeErr      *storage.WriteError
		accessErr     *storage.AccessError
		notFound      storage.FileNotFound
		execErr       *process.ExecutionError
		unreachable   *run.UnreachableFiles
	)
	switch {
	case errors.As(err, &usageErr):
		return "UsageError"
	case errors.As(err, &parseErr):
		return "ParseError"
	case errors.As(err, &validationErr):
		return "ValidationError"
	case errors.As(err, &configErr):
		return "ConfigError"
	case errors.As(err, &unreachable):
		if unreachable.Action == run.ActionUpload {
			return "StoreWriteError"
		}
		return "StoreAccessError"
	case errors.As(err, &writeErr):
		return "StoreWriteError"
	case errors.As(err, &notFound), errors.As(err, &accessErr):
		return "StoreAccessError"
	case errors.As(err, &execErr):
		return "ProcessExecutionError"
	}
	return "Error"
}

func Main(spec Spec) {
	os.Exit(Execute(NewCommand(spec)))
}
