package raster

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/ljfranklin/process-api-plugins/config"
	"github.com/ljfranklin/process-api-plugins/process"
)

const DefaultBinary = "gdalwarp"

//go:generate counterfeiter . Clipper

type Clipper interface {
	Clip(maskLayer string, inputRaster string, destination string) error
}

type GdalWarp struct {
	Runner       process.Runner
	Binary       string
	Env          []string
	OutputWriter io.Writer
}

func (g GdalWarp) Clip(maskLayer string, inputRaster string, destination string) error {
	binary := g.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	return g.Runner.Run(process.Command{
		Name: binary,
		Args: []string{
			"-overwrite",
			"-of", "GTiff",
			"-cutline", maskLayer,
			"-cl", "maskLayer",
			"-crop_to_cutline",
			inputRaster,
			destination,
		},
		Env:    g.Env,
		Stdout: g.OutputWriter,
		Stderr: g.OutputWriter,
	})
}

// VSIS3Path is the GDAL virtual file system path of an object in bucket.
func VSIS3Path(bucket string, key string) string {
	return fmt.Sprintf("/vsis3/%s/%s", bucket, strings.TrimPrefix(key, "/"))
}

// GDALEnv points GDAL's /vsis3/ driver at the same store as c.
func GDALEnv(c config.Config) []string {
	env := []string{
		"AWS_ACCESS_KEY_ID=" + c.AccessKeyID,
		"AWS_SECRET_ACCESS_KEY=" + c.SecretAccessKey,
		"AWS_REGION=" + c.Region,
	}
	if c.Mock {
		host := c.Endpoint
		if u, err := url.Parse(c.Endpoint); err == nil && u.Host != "" {
			host = u.Host
		}
		env = append(env,
			"AWS_S3_ENDPOINT="+host,
			"AWS_HTTPS=NO",
			"AWS_VIRTUAL_HOSTING=FALSE",
		)
	}
	return env
}
