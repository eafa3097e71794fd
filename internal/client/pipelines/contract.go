//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package pipelines

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/chimesdkmediapipelines"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type MediaPipelinesAPI interface {
	CreateMediaCapturePipeline(ctx context.Context, params *chimesdkmediapipelines.CreateMediaCapturePipelineInput, optFns ...func(*chimesdkmediapipelines.Options)) (*chimesdkmediapipelines.CreateMediaCapturePipelineOutput, error)
	DeleteMediaCapturePipeline(ctx context.Context, params *chimesdkmediapipelines.DeleteMediaCapturePipelineInput, optFns ...func(*chimesdkmediapipelines.Options)) (*chimesdkmediapipelines.DeleteMediaCapturePipelineOutput, error)
	CreateMediaLiveConnectorPipeline(ctx context.Context, params *chimesdkmediapipelines.CreateMediaLiveConnectorPipelineInput, optFns ...func(*chimesdkmediapipelines.Options)) (*chimesdkmediapipelines.CreateMediaLiveConnectorPipelineOutput, error)
	DeleteMediaPipeline(ctx context.Context, params *chimesdkmediapipelines.DeleteMediaPipelineInput, optFns ...func(*chimesdkmediapipelines.Options)) (*chimesdkmediapipelines.DeleteMediaPipelineOutput, error)
}

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}
