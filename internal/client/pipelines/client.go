package pipelines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmediapipelines"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmediapipelines/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/s21platform/meeting-service/internal/config"
	"github.com/s21platform/meeting-service/internal/model"
	"github.com/s21platform/meeting-service/internal/pkg/metrics"
)

const (
	serviceName = "pipelines"

	sourceTypeChimeSdkMeeting = "ChimeSdkMeeting"
	sinkTypeS3Bucket          = "S3Bucket"
	sinkTypeRTMP              = "RTMP"

	audioChannelsStereo     = "Stereo"
	audioSampleRate         = "48000"
	muxAudioCompositedVideo = "AudioWithCompositedVideo"
	layoutGridView          = "GridView"
	resolutionFHD           = "FHD"
	contentShareVertical    = "Vertical"
)

type Client struct {
	api     MediaPipelinesAPI
	sts     STSAPI
	capture config.Capture
	live    config.LiveConnector
}

func New(awsCfg aws.Config, cfg *config.Config) *Client {
	api := chimesdkmediapipelines.NewFromConfig(awsCfg, func(o *chimesdkmediapipelines.Options) {
		o.Region = cfg.AWS.MediaPipelinesRegion
		if cfg.AWS.MediaPipelinesEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.MediaPipelinesEndpoint)
		}
	})
	stsClient := sts.NewFromConfig(awsCfg, func(o *sts.Options) {
		o.Region = cfg.AWS.MediaPipelinesRegion
	})

	return NewWithAPI(api, stsClient, cfg.Capture, cfg.LiveConnector)
}

func NewWithAPI(api MediaPipelinesAPI, stsAPI STSAPI, capture config.Capture, live config.LiveConnector) *Client {
	return &Client{
		api:     api,
		sts:     stsAPI,
		capture: capture,
		live:    live,
	}
}

func (c *Client) CaptureEnabled() bool {
	return c.capture.Enabled()
}

func (c *Client) LiveConnectorEnabled() bool {
	return c.live.Enabled()
}

// StartCapture records the meeting's media to the configured S3 bucket.
func (c *Client) StartCapture(ctx context.Context, meetingID string) (_ *model.Pipeline, err error) {
	if !c.CaptureEnabled() {
		return nil, model.ErrPipelineNotConfigured
	}

	sourceArn, err := c.meetingArn(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	defer observe("CreateMediaCapturePipeline", time.Now(), &err)

	out, err := c.api.CreateMediaCapturePipeline(ctx, &chimesdkmediapipelines.CreateMediaCapturePipelineInput{
		SourceType: types.MediaPipelineSourceType(sourceTypeChimeSdkMeeting),
		SourceArn:  aws.String(sourceArn),
		SinkType:   types.MediaPipelineSinkType(sinkTypeS3Bucket),
		SinkArn:    aws.String(c.capture.S3Destination),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create capture pipeline for meeting %s: %w", meetingID, err)
	}

	p := out.MediaCapturePipeline
	if p == nil {
		return nil, fmt.Errorf("empty capture pipeline in response for meeting %s", meetingID)
	}

	return &model.Pipeline{
		MediaPipelineID:  aws.ToString(p.MediaPipelineId),
		MediaPipelineArn: aws.ToString(p.MediaPipelineArn),
		Status:           string(p.Status),
		CreatedTimestamp: p.CreatedTimestamp,
	}, nil
}

func (c *Client) StopCapture(ctx context.Context, pipelineID string) (err error) {
	if !c.CaptureEnabled() {
		return model.ErrPipelineNotConfigured
	}

	defer observe("DeleteMediaCapturePipeline", time.Now(), &err)

	_, err = c.api.DeleteMediaCapturePipeline(ctx, &chimesdkmediapipelines.DeleteMediaCapturePipelineInput{
		MediaPipelineId: aws.String(pipelineID),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete capture pipeline %s: %w", pipelineID, err)
	}

	return nil
}

// StartLiveConnector restreams the composited meeting to the RTMP endpoint.
func (c *Client) StartLiveConnector(ctx context.Context, meetingID string) (_ *model.Pipeline, err error) {
	if !c.LiveConnectorEnabled() {
		return nil, model.ErrPipelineNotConfigured
	}

	sourceArn, err := c.meetingArn(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	defer observe("CreateMediaLiveConnectorPipeline", time.Now(), &err)

	out, err := c.api.CreateMediaLiveConnectorPipeline(ctx, &chimesdkmediapipelines.CreateMediaLiveConnectorPipelineInput{
		Sinks: []types.LiveConnectorSinkConfiguration{{
			SinkType: types.LiveConnectorSinkType(sinkTypeRTMP),
			RTMPConfiguration: &types.LiveConnectorRTMPConfiguration{
				Url:             aws.String(c.live.IVSEndpoint),
				AudioChannels:   types.AudioChannelsOption(audioChannelsStereo),
				AudioSampleRate: aws.String(audioSampleRate),
			},
		}},
		Sources: []types.LiveConnectorSourceConfiguration{{
			SourceType: types.LiveConnectorSourceType(sourceTypeChimeSdkMeeting),
			ChimeSdkMeetingLiveConnectorConfiguration: &types.ChimeSdkMeetingLiveConnectorConfiguration{
				Arn:     aws.String(sourceArn),
				MuxType: types.LiveConnectorMuxType(muxAudioCompositedVideo),
				CompositedVideo: &types.CompositedVideoArtifactsConfiguration{
					Layout:     types.LayoutOption(layoutGridView),
					Resolution: types.ResolutionOption(resolutionFHD),
					GridViewConfiguration: &types.GridViewConfiguration{
						ContentShareLayout: types.ContentShareLayoutOption(contentShareVertical),
					},
				},
			},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create live connector pipeline for meeting %s: %w", meetingID, err)
	}

	p := out.MediaLiveConnectorPipeline
	if p == nil {
		return nil, fmt.Errorf("empty live connector pipeline in response for meeting %s", meetingID)
	}

	return &model.Pipeline{
		MediaPipelineID:  aws.ToString(p.MediaPipelineId),
		MediaPipelineArn: aws.ToString(p.MediaPipelineArn),
		Status:           string(p.Status),
		CreatedTimestamp: p.CreatedTimestamp,
	}, nil
}

func (c *Client) StopLiveConnector(ctx context.Context, pipelineID string) (err error) {
	if !c.LiveConnectorEnabled() {
		return model.ErrPipelineNotConfigured
	}

	defer observe("DeleteMediaPipeline", time.Now(), &err)

	_, err = c.api.DeleteMediaPipeline(ctx, &chimesdkmediapipelines.DeleteMediaPipelineInput{
		MediaPipelineId: aws.String(pipelineID),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete live connector pipeline %s: %w", pipelineID, err)
	}

	return nil
}

func (c *Client) meetingArn(ctx context.Context, meetingID string) (_ string, err error) {
	defer func(started time.Time) {
		status := metrics.StatusSuccess
		if err != nil {
			status = metrics.StatusFailed
		}
		metrics.RecordRemoteCall("sts", "GetCallerIdentity", status, started)
	}(time.Now())

	identity, err := c.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}

	return fmt.Sprintf("arn:aws:chime::%s:meeting:%s", aws.ToString(identity.Account), meetingID), nil
}

func isNotFound(err error) bool {
	var notFound *types.NotFoundException
	return errors.As(err, &notFound)
}

func observe(operation string, started time.Time, err *error) {
	status := metrics.StatusSuccess
	if *err != nil {
		status = metrics.StatusFailed
	}
	metrics.RecordRemoteCall(serviceName, operation, status, started)
}
