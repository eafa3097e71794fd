package model

import (
	"errors"
	"time"
)

var ErrPipelineNotConfigured = errors.New("media pipeline destination not configured")

type Pipeline struct {
	MediaPipelineID  string     `json:"MediaPipelineId"`
	MediaPipelineArn string     `json:"MediaPipelineArn,omitempty"`
	Status           string     `json:"Status,omitempty"`
	CreatedTimestamp *time.Time `json:"CreatedTimestamp,omitempty"`
}

type CapturePipelineResponse struct {
	MediaCapturePipeline Pipeline `json:"MediaCapturePipeline"`
}

type LiveConnectorPipelineResponse struct {
	MediaLiveConnectorPipeline Pipeline `json:"MediaLiveConnectorPipeline"`
}
