package models

import (
	"encoding/json"

	"github.com/ljfranklin/process-api-plugins/envelope"
)

// EchoRequest keeps Text as raw JSON so it is echoed back unchanged
// whatever its type.
type EchoRequest struct {
	JobID envelope.String `json:"jobID"`
	Text  json.RawMessage `json:"text"`
}

type WriteTextRequest struct {
	JobID      envelope.String `json:"jobID"`
	UserInput  envelope.String `json:"userInput"`
	OutputFile envelope.String `json:"outputFile"`
}

type ClipRasterRequest struct {
	JobID                    envelope.String `json:"jobID"`
	ResultsDir               envelope.String `json:"resultsDir"`
	ClippedRasterDestination envelope.String `json:"clippedRasterDestination"`
	MaskLayer                envelope.String `json:"maskLayer"`
	InputRaster              envelope.String `json:"inputRaster"`
	ExpDays                  envelope.Days   `json:"expDays"`
}

type RunRequest struct {
	JobID  envelope.String `json:"jobID"`
	Prefix envelope.String `json:"prefix"`
}

// ModelConfig is the document stored at RunRequest.Prefix describing what
// a model run consumes and produces.
type ModelConfig struct {
	SimulationName string   `json:"simulationName"`
	Inputs         []string `json:"inputs"`
	Outputs        []string `json:"outputs"`
	JobRootPrefix  string   `json:"jobRootPrefix"`
}

type Message struct {
	Message json.RawMessage `json:"message"`
}

type TextFile struct {
	TextFile string `json:"textFile"`
	Ref      string `json:"ref"`
}

type Link struct {
	Href  string `json:"href"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

type Output struct {
	Value string `json:"value"`
	Links []Link `json:"links"`
}

// ClipRasterResults is keyed by output name, e.g. "clippedRaster".
type ClipRasterResults map[string]Output
