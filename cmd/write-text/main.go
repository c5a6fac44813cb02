package main

import (
	"github.com/ljfranklin/process-api-plugins/cli"
	"github.com/ljfranklin/process-api-plugins/config"
	"github.com/ljfranklin/process-api-plugins/envelope"
	"github.com/ljfranklin/process-api-plugins/storage"
	"github.com/ljfranklin/process-api-plugins/write"
)

func main() {
	cli.Main(cli.Spec{
		Name:    "write-text",
		Short:   "Write `userInput` to `outputFile` in the object store and return a presigned link",
		Example: `write-text '{"jobID": "sadf234sdf234sdf", "userInput": "hello!", "outputFile": "pywrite/outputs/demo.txt"}'`,
		Run: func(env cli.Env) error {
			request, err := write.Parse(env.Payload)
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

			writer := write.Writer{
				Storage: store,
				Logger:  env.Logger,
			}

			result, err := writer.Write(request)
			if err != nil {
				return err
			}

			return envelope.Emit(env.Stdout, result)
		},
	})
}
