package run_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ljfranklin/process-api-plugins/envelope"
	"github.com/ljfranklin/process-api-plugins/models"
	"github.com/ljfranklin/process-api-plugins/process"
	"github.com/ljfranklin/process-api-plugins/process/processfakes"
	"github.com/ljfranklin/process-api-plugins/run"
	"github.com/ljfranklin/process-api-plugins/storage"
	"github.com/ljfranklin/process-api-plugins/storage/storagefakes"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelConfig = `{
	"simulationName": "demo",
	"inputs": ["inputs/params.json", "inputs/terrain.tif"],
	"outputs": ["simulation/model-run-log.txt"],
	"jobRootPrefix": "runs/job-1"
}`

func newRunner(t *testing.T, objects map[string]string) (run.Runner, *storagefakes.FakeStore, *processfakes.FakeRunner) {
	t.Helper()

	fakeStorage := &storagefakes.FakeStore{}
	fakeStorage.GetStub = func(key string, writer io.Writer) error {
		contents, ok := objects[key]
		if !ok {
			return storage.FileNotFound{Key: key}
		}
		_, err := io.WriteString(writer, contents)
		return err
	}
	fakeProcess := &processfakes.FakeRunner{}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return run.Runner{
		Storage: fakeStorage,
		Process: fakeProcess,
		Model:   []string{"./model", "--fast"},
		WorkDir: t.TempDir(),
		Logger:  logger,
	}, fakeStorage, fakeProcess
}

func TestRun(t *testing.T) {
	runner, fakeStorage, fakeProcess := newRunner(t, map[string]string{
		"configs/job-1.json": modelConfig,
		"inputs/params.json": `{"steps": 10}`,
		"inputs/terrain.tif": "some-raster",
	})
	fakeProcess.RunStub = func(cmd process.Command) error {
		return os.WriteFile(filepath.Join(cmd.Dir, "simulation", "model-run-log.txt"), []byte("done"), 0644)
	}

	request, err := run.Parse(`{"jobID": "job-1", "prefix": "configs/job-1.json"}`)
	require.NoError(t, err)

	outputs, err := runner.Run(request)
	require.NoError(t, err)
	assert.Equal(t, []string{"runs/job-1/simulation/model-run-log.txt"}, outputs)

	params, err := os.ReadFile(filepath.Join(runner.WorkDir, "inputs", "params.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"steps": 10}`, string(params))
	assert.FileExists(t, filepath.Join(runner.WorkDir, "inputs", "terrain.tif"))

	require.Equal(t, 1, fakeProcess.RunCallCount())
	cmd := fakeProcess.RunArgsForCall(0)
	assert.Equal(t, "./model", cmd.Name)
	assert.Equal(t, []string{"--fast"}, cmd.Args)
	assert.Equal(t, runner.WorkDir, cmd.Dir)

	require.Equal(t, 1, fakeStorage.PutFileCallCount())
	key, localPath, _ := fakeStorage.PutFileArgsForCall(0)
	assert.Equal(t, "runs/job-1/simulation/model-run-log.txt", key)
	assert.Equal(t, filepath.Join(runner.WorkDir, "simulation", "model-run-log.txt"), localPath)
}

func TestRunReportsEveryMissingInput(t *testing.T) {
	runner, fakeStorage, fakeProcess := newRunner(t, map[string]string{
		"configs/job-1.json": modelConfig,
	})

	_, err := runner.Run(models.RunRequest{JobID: "job-1", Prefix: "configs/job-1.json"})

	var unreachable *run.UnreachableFiles
	require.True(t, errors.As(err, &unreachable))
	assert.Equal(t, "download", unreachable.Action)
	assert.Equal(t, []string{"inputs/params.json", "inputs/terrain.tif"}, unreachable.Files)
	assert.Equal(t, 0, fakeProcess.RunCallCount())
	assert.Equal(t, 0, fakeStorage.PutFileCallCount())
}

func TestRunReportsMissingOutputs(t *testing.T) {
	runner, fakeStorage, _ := newRunner(t, map[string]string{
		"configs/job-1.json": modelConfig,
		"inputs/params.json": "{}",
		"inputs/terrain.tif": "raster",
	})
	fakeStorage.PutFileReturns(&storage.WriteError{Key: "runs/job-1/simulation/model-run-log.txt", Err: errors.New("no such file")})

	_, err := runner.Run(models.RunRequest{JobID: "job-1", Prefix: "configs/job-1.json"})

	var unreachable *run.UnreachableFiles
	require.True(t, errors.As(err, &unreachable))
	assert.Equal(t, "upload", unreachable.Action)
	assert.Contains(t, err.Error(), "simulation/model-run-log.txt")
}

func TestRunRejectsInputsOutsideWorkDir(t *testing.T) {
	runner, _, fakeProcess := newRunner(t, map[string]string{
		"configs/job-1.json": `{
			"inputs": ["../escape.txt", "inputs/ok.txt"],
			"outputs": [],
			"jobRootPrefix": "runs/job-1"
		}`,
		"../escape.txt": "outside",
		"inputs/ok.txt": "inside",
	})

	_, err := runner.Run(models.RunRequest{JobID: "job-1", Prefix: "configs/job-1.json"})

	var unreachable *run.UnreachableFiles
	require.True(t, errors.As(err, &unreachable))
	assert.Equal(t, []string{"../escape.txt"}, unreachable.Files)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(runner.WorkDir), "escape.txt"))
	assert.FileExists(t, filepath.Join(runner.WorkDir, "inputs", "ok.txt"))
	assert.Equal(t, 0, fakeProcess.RunCallCount())
}

func TestRunRemovesPartialDownloads(t *testing.T) {
	runner, fakeStorage, _ := newRunner(t, nil)
	fakeStorage.GetStub = func(key string, writer io.Writer) error {
		if key == "configs/job-1.json" {
			_, err := io.WriteString(writer, modelConfig)
			return err
		}
		io.WriteString(writer, "partial")
		return &storage.AccessError{Key: key, Err: errors.New("connection reset")}
	}

	_, err := runner.Run(models.RunRequest{JobID: "job-1", Prefix: "configs/job-1.json"})

	var unreachable *run.UnreachableFiles
	require.True(t, errors.As(err, &unreachable))
	assert.Equal(t, run.ActionDownload, unreachable.Action)
	assert.NoFileExists(t, filepath.Join(runner.WorkDir, "inputs", "params.json"))
	assert.NoFileExists(t, filepath.Join(runner.WorkDir, "inputs", "terrain.tif"))
}

func TestRunRejectsOutputsOutsideWorkDir(t *testing.T) {
	runner, fakeStorage, _ := newRunner(t, map[string]string{
		"configs/job-1.json": `{"inputs": [], "outputs": ["../../etc/passwd"], "jobRootPrefix": "runs/job-1"}`,
	})

	_, err := runner.Run(models.RunRequest{JobID: "job-1", Prefix: "configs/job-1.json"})

	var unreachable *run.UnreachableFiles
	require.True(t, errors.As(err, &unreachable))
	assert.Equal(t, run.ActionUpload, unreachable.Action)
	assert.Equal(t, 0, fakeStorage.PutFileCallCount())
}

func TestRunErrorsOnMissingConfig(t *testing.T) {
	runner, _, _ := newRunner(t, map[string]string{})

	_, err := runner.Run(models.RunRequest{JobID: "job-1", Prefix: "configs/missing.json"})

	var notFound storage.FileNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "configs/missing.json", notFound.Key)
}

func TestRunErrorsOnInvalidConfig(t *testing.T) {
	runner, _, _ := newRunner(t, map[string]string{
		"configs/job-1.json": "{{{",
	})

	_, err := runner.Run(models.RunRequest{JobID: "job-1", Prefix: "configs/job-1.json"})

	var parseErr *envelope.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, err.Error(), "configs/job-1.json")
}

func TestRunStopsOnModelFailure(t *testing.T) {
	runner, fakeStorage, fakeProcess := newRunner(t, map[string]string{
		"configs/job-1.json": modelConfig,
		"inputs/params.json": "{}",
		"inputs/terrain.tif": "raster",
	})
	fakeProcess.RunReturns(&process.ExecutionError{Command: "./model --fast", ExitCode: 2})

	_, err := runner.Run(models.RunRequest{JobID: "job-1", Prefix: "configs/job-1.json"})

	var execErr *process.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 0, fakeStorage.PutFileCallCount())
}

func TestParseRequiresJobIDAndPrefix(t *testing.T) {
	_, err := run.Parse(fmt.Sprintf(`{"jobID": "%s"}`, "job-1"))

	var validationErr *envelope.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "prefix", validationErr.Key)
}
