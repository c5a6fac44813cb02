package run

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ljfranklin/process-api-plugins/envelope"
	"github.com/ljfranklin/process-api-plugins/models"
	"github.com/ljfranklin/process-api-plugins/process"
	"github.com/ljfranklin/process-api-plugins/storage"
	"github.com/sirupsen/logrus"
)

var Required = []string{"jobID", "prefix"}

const (
	ActionDownload = "download"
	ActionUpload   = "upload"
)

func Parse(raw string) (models.RunRequest, error) {
	var request models.RunRequest
	err := envelope.Decode(raw, Required, &request)
	return request, err
}

// UnreachableFiles lists every input or output that could not be
// transferred during a run.
type UnreachableFiles struct {
	Action string
	Files  []string
}

func (u *UnreachableFiles) Error() string {
	return fmt.Sprintf("unable to %s files: %s. Verify filepaths are correct and reachable", u.Action, strings.Join(u.Files, ", "))
}

type Runner struct {
	Storage storage.Store
	Process process.Runner
	// Model is the command run inside WorkDir once the inputs are staged.
	Model        []string
	WorkDir      string
	OutputWriter io.Writer
	Logger       logrus.FieldLogger
}

func (r Runner) Run(request models.RunRequest) ([]string, error) {
	logger := r.Logger.WithFields(logrus.Fields{
		"job_id": request.JobID,
		"prefix": request.Prefix,
	})

	modelConfig, err := r.fetchConfig(request.Prefix.String())
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"simulation": modelConfig.SimulationName,
		"inputs":     modelConfig.Inputs,
		"outputs":    modelConfig.Outputs,
	}).Info("downloading inputs")

	if err := r.stageInputs(modelConfig, logger); err != nil {
		return nil, err
	}

	if len(r.Model) > 0 {
		logger.WithField("command", strings.Join(r.Model, " ")).Info("running model")
		err = r.Process.Run(process.Command{
			Name:   r.Model[0],
			Args:   r.Model[1:],
			Dir:    r.WorkDir,
			Stdout: r.OutputWriter,
			Stderr: r.OutputWriter,
		})
		if err != nil {
			return nil, err
		}
	}

	logger.Info("uploading outputs")
	return r.uploadOutputs(modelConfig, logger)
}

func (r Runner) fetchConfig(key string) (models.ModelConfig, error) {
	contents := bytes.Buffer{}
	if err := r.Storage.Get(key, &contents); err != nil {
		return models.ModelConfig{}, err
	}

	var modelConfig models.ModelConfig
	if err := json.Unmarshal(contents.Bytes(), &modelConfig); err != nil {
		return models.ModelConfig{}, &envelope.ParseError{Err: fmt.Errorf("model config '%s': %s", key, err)}
	}
	return modelConfig, nil
}

func (r Runner) stageInputs(modelConfig models.ModelConfig, logger logrus.FieldLogger) error {
	for _, name := range append(modelConfig.Inputs, modelConfig.Outputs...) {
		local, err := r.localPath(name)
		if err != nil {
			// reported with the failed transfers below
			continue
		}
		dir := filepath.Dir(local)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("error creating directory %s: %s", dir, err)
		}
	}

	unreachable := []string{}
	for _, name := range modelConfig.Inputs {
		if err := r.download(name); err != nil {
			logger.WithError(err).WithField("key", name).Error("unable to download input")
			unreachable = append(unreachable, name)
			continue
		}
		logger.WithField("key", name).Debug("downloaded input")
	}

	if len(unreachable) > 0 {
		return &UnreachableFiles{Action: ActionDownload, Files: unreachable}
	}
	return nil
}

// localPath maps a store key to its file under WorkDir, rejecting keys
// that would land outside of it.
func (r Runner) localPath(name string) (string, error) {
	local := filepath.Join(r.WorkDir, name)
	rel, err := filepath.Rel(r.WorkDir, local)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("'%s' is outside of the model directory", name)
	}
	return local, nil
}

func (r Runner) download(name string) error {
	local, err := r.localPath(name)
	if err != nil {
		return err
	}

	f, err := os.Create(local)
	if err != nil {
		return err
	}

	if err = r.Storage.Get(name, f); err != nil {
		f.Close()
		os.Remove(local)
		return err
	}

	return f.Close()
}

func (r Runner) uploadOutputs(modelConfig models.ModelConfig, logger logrus.FieldLogger) ([]string, error) {
	uploaded := []string{}
	unreachable := []string{}
	for _, name := range modelConfig.Outputs {
		key := path.Join(modelConfig.JobRootPrefix, name)
		local, err := r.localPath(name)
		if err == nil {
			err = r.Storage.PutFile(key, local, storage.PutOptions{})
		}
		if err != nil {
			logger.WithError(err).WithField("key", key).Error("unable to upload output")
			unreachable = append(unreachable, name)
			continue
		}
		logger.WithField("key", key).Debug("uploaded output")
		uploaded = append(uploaded, key)
	}

	if len(unreachable) > 0 {
		return nil, &UnreachableFiles{Action: ActionUpload, Files: unreachable}
	}
	return uploaded, nil
}
