package write

import (
	"strings"

	"github.com/ljfranklin/process-api-plugins/envelope"
	"github.com/ljfranklin/process-api-plugins/models"
	"github.com/ljfranklin/process-api-plugins/storage"
	"github.com/sirupsen/logrus"
)

const contentType = "text/plain"

var Required = []string{"userInput", "outputFile"}

func Parse(raw string) (models.WriteTextRequest, error) {
	var request models.WriteTextRequest
	err := envelope.Decode(raw, Required, &request)
	return request, err
}

type Writer struct {
	Storage storage.Store
	Logger  logrus.FieldLogger
}

// Write stores the user's text at the requested key and returns a link to it.
func (w Writer) Write(request models.WriteTextRequest) (models.TextFile, error) {
	key := request.OutputFile.String()
	logger := w.Logger.WithFields(logrus.Fields{
		"job_id": request.JobID,
		"key":    key,
	})

	err := w.Storage.Put(key, strings.NewReader(request.UserInput.String()), storage.PutOptions{
		ContentType: contentType,
	})
	if err != nil {
		return models.TextFile{}, err
	}
	logger.Info("wrote text to store")

	ref, err := w.Storage.PresignGet(key, storage.DefaultPresignDays)
	if err != nil {
		return models.TextFile{}, err
	}
	logger.Debug("presigned URL created")

	return models.TextFile{
		TextFile: key,
		Ref:      ref,
	}, nil
}
