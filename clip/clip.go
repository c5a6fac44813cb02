package clip

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"

	"github.com/ljfranklin/process-api-plugins/envelope"
	"github.com/ljfranklin/process-api-plugins/models"
	"github.com/ljfranklin/process-api-plugins/raster"
	"github.com/ljfranklin/process-api-plugins/storage"
	"github.com/sirupsen/logrus"
)

const (
	OutputName  = "clippedRaster"
	rasterType  = "application/tif; application/geotiff"
	linkTitle   = "presignedURL"
	resultsType = "application/json"
)

var Required = []string{
	"jobID",
	"resultsDir",
	"clippedRasterDestination",
	"maskLayer",
	"inputRaster",
}

func Parse(raw string) (models.ClipRasterRequest, error) {
	var request models.ClipRasterRequest
	err := envelope.Decode(raw, Required, &request)
	return request, err
}

type Clipper struct {
	Storage storage.Store
	Raster  raster.Clipper
	Logger  logrus.FieldLogger
}

// ResultsKey is where the results document of a job is written.
func ResultsKey(request models.ClipRasterRequest) string {
	return path.Join(request.ResultsDir.String(), fmt.Sprintf("%s.json", request.JobID))
}

func (c Clipper) Clip(request models.ClipRasterRequest) (models.ClipRasterResults, error) {
	logger := c.Logger.WithField("job_id", request.JobID)
	expDays := int(request.ExpDays)
	rasterKey := request.ClippedRasterDestination.String()
	maskLayer := request.MaskLayer.String()
	inputRaster := request.InputRaster.String()

	destination := raster.VSIS3Path(c.Storage.Bucket(), rasterKey)
	logger.WithFields(logrus.Fields{
		"mask_layer":   maskLayer,
		"input_raster": inputRaster,
		"destination":  destination,
	}).Info("clipping raster")
	if err := c.Raster.Clip(maskLayer, inputRaster, destination); err != nil {
		return nil, err
	}

	href, err := c.Storage.PresignGet(rasterKey, expDays)
	if err != nil {
		return nil, err
	}

	results := models.ClipRasterResults{
		OutputName: {
			Value: rasterKey,
			Links: []models.Link{
				{
					Href:  href,
					Type:  rasterType,
					Title: linkTitle,
				},
			},
		},
	}

	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to encode results: %s", err)
	}

	resultsKey := ResultsKey(request)
	logger.WithField("key", resultsKey).Info("writing results to store")
	err = c.Storage.Put(resultsKey, bytes.NewReader(resultsJSON), storage.PutOptions{
		ContentType: resultsType,
		ExpDays:     expDays,
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
