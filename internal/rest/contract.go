//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/meeting-service/internal/model"
)

type SessionStore interface {
	Get(ctx context.Context, title string) (*model.Session, error)
	Put(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, title string) error
	List(ctx context.Context, limit int) (model.SessionList, error)
}

type MeetingsClient interface {
	GetMeeting(ctx context.Context, meetingID string) (*model.Meeting, error)
	CreateMeeting(ctx context.Context, params model.CreateMeetingParams) (*model.Meeting, error)
	DeleteMeeting(ctx context.Context, meetingID string) error
	CreateAttendee(ctx context.Context, meetingID, externalUserID string, caps *model.AttendeeCapabilities) (*model.Attendee, error)
	AddAttendees(ctx context.Context, meetingID, names string) (model.AttendeeList, error)
	ListAllAttendees(ctx context.Context, meetingID string) (model.AttendeeList, error)
	FindAttendeeByExternalID(ctx context.Context, meetingID, externalUserID string) (*model.Attendee, error)
	GetAttendee(ctx context.Context, meetingID, attendeeID string) (*model.Attendee, error)
	DeleteAttendee(ctx context.Context, meetingID, attendeeID string) error
	UpdateAttendeeCapabilities(ctx context.Context, meetingID, attendeeID string, caps model.AttendeeCapabilities) (*model.Attendee, error)
	BatchUpdateAttendeeCapabilitiesExcept(ctx context.Context, meetingID string, excluded []string, caps model.AttendeeCapabilities) error
	StartTranscription(ctx context.Context, meetingID string, cfg model.TranscriptionConfig) error
	StopTranscription(ctx context.Context, meetingID string) error
	Credentials(ctx context.Context) (*model.Credentials, error)
}

type PipelinesClient interface {
	CaptureEnabled() bool
	LiveConnectorEnabled() bool
	StartCapture(ctx context.Context, meetingID string) (*model.Pipeline, error)
	StopCapture(ctx context.Context, pipelineID string) error
	StartLiveConnector(ctx context.Context, meetingID string) (*model.Pipeline, error)
	StopLiveConnector(ctx context.Context, pipelineID string) error
}

type UserVerifier interface {
	VerifyUser(ctx context.Context, username string) error
}

type Validator interface {
	ValidateMeetingsRequest(req *model.MeetingsRequest) error
	ValidateJoinParams(params *model.JoinParams) error
	ValidateCapabilities(caps model.AttendeeCapabilities) error
	ValidateTranscriptionParams(params *model.TranscriptionParams) error
}
