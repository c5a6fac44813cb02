package raster_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ljfranklin/process-api-plugins/config"
	"github.com/ljfranklin/process-api-plugins/process"
	"github.com/ljfranklin/process-api-plugins/process/processfakes"
	"github.com/ljfranklin/process-api-plugins/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipBuildsGdalwarpArgs(t *testing.T) {
	fakeRunner := &processfakes.FakeRunner{}
	output := bytes.Buffer{}
	clipper := raster.GdalWarp{
		Runner:       fakeRunner,
		Env:          []string{"AWS_REGION=us-east-1"},
		OutputWriter: &output,
	}

	err := clipper.Clip(
		"/vsizip//vsis3/some-bucket/mask.zip/mask.shp",
		"/vsis3/some-bucket/input.tif",
		"/vsis3/some-bucket/clipped.tif",
	)
	require.NoError(t, err)

	require.Equal(t, 1, fakeRunner.RunCallCount())
	cmd := fakeRunner.RunArgsForCall(0)
	assert.Equal(t, "gdalwarp", cmd.Name)
	assert.Equal(t, []string{
		"-overwrite",
		"-of", "GTiff",
		"-cutline", "/vsizip//vsis3/some-bucket/mask.zip/mask.shp",
		"-cl", "maskLayer",
		"-crop_to_cutline",
		"/vsis3/some-bucket/input.tif",
		"/vsis3/some-bucket/clipped.tif",
	}, cmd.Args)
	assert.Equal(t, []string{"AWS_REGION=us-east-1"}, cmd.Env)
	assert.Equal(t, &output, cmd.Stdout)
}

func TestClipPropagatesExecutionError(t *testing.T) {
	fakeRunner := &processfakes.FakeRunner{}
	fakeRunner.RunReturns(&process.ExecutionError{Command: "gdalwarp", ExitCode: 1})

	err := raster.GdalWarp{Runner: fakeRunner}.Clip("mask", "in", "out")

	var execErr *process.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 1, execErr.ExitCode)
}

func TestClipWithStubBinary(t *testing.T) {
	tmpDir := t.TempDir()
	argsFile := filepath.Join(tmpDir, "args")
	stub := filepath.Join(tmpDir, "gdalwarp")
	script := "#!/bin/sh\necho \"$@\" > " + argsFile + "\n"
	require.NoError(t, os.WriteFile(stub, []byte(script), 0755))

	clipper := raster.GdalWarp{
		Runner: process.Exec{},
		Binary: stub,
	}
	err := clipper.Clip("mask.shp", "input.tif", "out.tif")
	require.NoError(t, err)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "-overwrite -of GTiff -cutline mask.shp -cl maskLayer -crop_to_cutline input.tif out.tif\n", string(args))
}

func TestVSIS3Path(t *testing.T) {
	assert.Equal(t, "/vsis3/some-bucket/clipped/raster.tif", raster.VSIS3Path("some-bucket", "clipped/raster.tif"))
	assert.Equal(t, "/vsis3/some-bucket/raster.tif", raster.VSIS3Path("some-bucket", "/raster.tif"))
}

func TestGDALEnv(t *testing.T) {
	c := config.Config{
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Region:          "us-east-1",
		Bucket:          "some-bucket",
	}
	assert.Equal(t, []string{
		"AWS_ACCESS_KEY_ID=key",
		"AWS_SECRET_ACCESS_KEY=secret",
		"AWS_REGION=us-east-1",
	}, raster.GDALEnv(c))

	c.Mock = true
	c.Endpoint = "http://minio:9000"
	env := raster.GDALEnv(c)
	assert.Contains(t, env, "AWS_S3_ENDPOINT=minio:9000")
	assert.Contains(t, env, "AWS_HTTPS=NO")
	assert.Contains(t, env, "AWS_VIRTUAL_HOSTING=FALSE")
}
