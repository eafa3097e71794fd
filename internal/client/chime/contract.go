//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package chime

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
)

// MeetingsAPI is the subset of the Chime SDK Meetings client used here.
type MeetingsAPI interface {
	GetMeeting(ctx context.Context, params *chimesdkmeetings.GetMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.GetMeetingOutput, error)
	CreateMeeting(ctx context.Context, params *chimesdkmeetings.CreateMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateMeetingOutput, error)
	DeleteMeeting(ctx context.Context, params *chimesdkmeetings.DeleteMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.DeleteMeetingOutput, error)
	CreateAttendee(ctx context.Context, params *chimesdkmeetings.CreateAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateAttendeeOutput, error)
	BatchCreateAttendee(ctx context.Context, params *chimesdkmeetings.BatchCreateAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.BatchCreateAttendeeOutput, error)
	ListAttendees(ctx context.Context, params *chimesdkmeetings.ListAttendeesInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.ListAttendeesOutput, error)
	GetAttendee(ctx context.Context, params *chimesdkmeetings.GetAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.GetAttendeeOutput, error)
	DeleteAttendee(ctx context.Context, params *chimesdkmeetings.DeleteAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.DeleteAttendeeOutput, error)
	UpdateAttendeeCapabilities(ctx context.Context, params *chimesdkmeetings.UpdateAttendeeCapabilitiesInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.UpdateAttendeeCapabilitiesOutput, error)
	BatchUpdateAttendeeCapabilitiesExcept(ctx context.Context, params *chimesdkmeetings.BatchUpdateAttendeeCapabilitiesExceptInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.BatchUpdateAttendeeCapabilitiesExceptOutput, error)
	StartMeetingTranscription(ctx context.Context, params *chimesdkmeetings.StartMeetingTranscriptionInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.StartMeetingTranscriptionOutput, error)
	StopMeetingTranscription(ctx context.Context, params *chimesdkmeetings.StopMeetingTranscriptionInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.StopMeetingTranscriptionOutput, error)
}
