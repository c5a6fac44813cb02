package main

import (
	"github.com/ljfranklin/process-api-plugins/cli"
	"github.com/ljfranklin/process-api-plugins/echo"
	"github.com/ljfranklin/process-api-plugins/envelope"
)

func main() {
	cli.Main(cli.Spec{
		Name:    "echo",
		Short:   "Echo the `text` field of the payload back as the plugin result",
		Example: `echo '{"text":"hello"}'`,
		Run: func(env cli.Env) error {
			request, err := echo.Parse(env.Payload)
			if err != nil {
				return err
			}

			return envelope.Emit(env.Stdout, echo.Echo(request))
		},
	})
}
