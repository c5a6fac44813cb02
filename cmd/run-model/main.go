package main

import (
	"os"
	"strings"

	"github.com/ljfranklin/process-api-plugins/cli"
	"github.com/ljfranklin/process-api-plugins/config"
	"github.com/ljfranklin/process-api-plugins/envelope"
	"github.com/ljfranklin/process-api-plugins/process"
	"github.com/ljfranklin/process-api-plugins/run"
	"github.com/ljfranklin/process-api-plugins/storage"
)

const (
	envModelCommand = "MODEL_COMMAND"
	envWorkDir      = "MODEL_WORKDIR"
	defaultWorkDir  = "model"
)

func main() {
	cli.Main(cli.Spec{
		Name:    "run-model",
		Short:   "Stage model inputs from the object store, run the model and upload its outputs",
		Example: `run-model '{"jobID": "s4-df-5r", "prefix": "root-prefix/payload.json"}'`,
		Run: func(env cli.Env) error {
			request, err := run.Parse(env.Payload)
			if err != nil {
				return err
			}

			storeConfig, err := config.FromEnv()
			if err != nil {
				return err
			}

			store, err := storage.NewS3(storeConfig)
			if err != nil {
				return err
			}

			workDir := os.Getenv(envWorkDir)
			if workDir == "" {
				workDir = defaultWorkDir
			}

			runner := run.Runner{
				Storage:      store,
				Process:      process.Exec{},
				Model:        strings.Fields(os.Getenv(envModelCommand)),
				WorkDir:      workDir,
				OutputWriter: env.Stderr,
				Logger:       env.Logger,
			}

			outputs, err := runner.Run(request)
			if err != nil {
				return err
			}

			return envelope.Emit(env.Stdout, outputs)
		},
	})
}
