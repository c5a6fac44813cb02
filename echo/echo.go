package echo

import (
	"github.com/ljfranklin/process-api-plugins/envelope"
	"github.com/ljfranklin/process-api-plugins/models"
)

var Required = []string{"text"}

func Parse(raw string) (models.EchoRequest, error) {
	var request models.EchoRequest
	err := envelope.Decode(raw, Required, &request)
	return request, err
}

func Echo(request models.EchoRequest) models.Message {
	return models.Message{Message: request.Text}
}
