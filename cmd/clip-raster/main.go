package main

import (
	"github.com/ljfranklin/process-api-plugins/cli"
	"github.com/ljfranklin/process-api-plugins/clip"
	"github.com/ljfranklin/process-api-plugins/config"
	"github.com/ljfranklin/process-api-plugins/envelope"
	"github.com/ljfranklin/process-api-plugins/process"
	"github.com/ljfranklin/process-api-plugins/raster"
	"github.com/ljfranklin/process-api-plugins/storage"
)

func main() {
	cli.Main(cli.Spec{
		Name:  "clip-raster",
		Short: "Clip a raster to a mask layer with gdalwarp and publish the result",
		Example: `clip-raster '{"jobID": "sadf234sdf234sdf", "resultsDir": "results", ` +
			`"clippedRasterDestination": "clipped-raster-inputs/clipped_raster.tif", ` +
			`"maskLayer": "/vsizip//vsis3/texas-glo/clipped-raster-inputs/maskLayer.zip/maskLayer.shp", ` +
			`"inputRaster": "/vsis3/texas-glo/clipped-raster-inputs/input_raster.tif", "expDays": 7}'`,
		Run: func(env cli.Env) error {
			request, err := clip.Parse(env.Payload)
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

			clipper := clip.Clipper{
				Storage: store,
				Raster: raster.GdalWarp{
					Runner:       process.Exec{},
					Env:          raster.GDALEnv(storeConfig),
					OutputWriter: env.Stderr,
				},
				Logger: env.Logger,
			}

			results, err := clipper.Clip(request)
			if err != nil {
				return err
			}

			return envelope.Emit(env.Stdout, results)
		},
	})
}
