package chime

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings/types"
	"github.com/google/uuid"

	"github.com/s21platform/meeting-service/internal/model"
	"github.com/s21platform/meeting-service/internal/pkg/metrics"
)

const (
	serviceName = "chime"

	// ListAttendeesPageSize is the page size used when scanning attendees.
	ListAttendeesPageSize = 100
	// BatchCreateAttendeeLimit is the service's per-call attendee limit.
	BatchCreateAttendeeLimit = 100
)

type Client struct {
	api         MeetingsAPI
	credentials aws.CredentialsProvider
}

func New(cfg aws.Config, endpoint string) *Client {
	api := chimesdkmeetings.NewFromConfig(cfg, func(o *chimesdkmeetings.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return NewWithAPI(api, cfg.Credentials)
}

func NewWithAPI(api MeetingsAPI, credentials aws.CredentialsProvider) *Client {
	return &Client{
		api:         api,
		credentials: credentials,
	}
}

func (c *Client) GetMeeting(ctx context.Context, meetingID string) (_ *model.Meeting, err error) {
	defer observe("GetMeeting", time.Now(), &err)

	out, err := c.api.GetMeeting(ctx, &chimesdkmeetings.GetMeetingInput{
		MeetingId: aws.String(meetingID),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, model.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting %s: %w", meetingID, err)
	}

	meeting := toMeeting(out.Meeting)
	return &meeting, nil
}

func (c *Client) CreateMeeting(ctx context.Context, params model.CreateMeetingParams) (_ *model.Meeting, err error) {
	defer observe("CreateMeeting", time.Now(), &err)

	input := &chimesdkmeetings.CreateMeetingInput{
		ClientRequestToken: aws.String(uuid.New().String()),
		ExternalMeetingId:  aws.String(model.TruncateExternalID(params.ExternalMeetingID)),
		MeetingFeatures:    toFeaturesConfiguration(params.Features),
	}
	if params.MediaRegion != "" {
		input.MediaRegion = aws.String(params.MediaRegion)
	}
	if params.PrimaryMeetingID != "" {
		input.PrimaryMeetingId = aws.String(params.PrimaryMeetingID)
	}

	out, err := c.api.CreateMeeting(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting %s: %w", params.ExternalMeetingID, err)
	}

	meeting := toMeeting(out.Meeting)
	return &meeting, nil
}

func (c *Client) DeleteMeeting(ctx context.Context, meetingID string) (err error) {
	defer observe("DeleteMeeting", time.Now(), &err)

	_, err = c.api.DeleteMeeting(ctx, &chimesdkmeetings.DeleteMeetingInput{
		MeetingId: aws.String(meetingID),
	})
	if err != nil {
		if isNotFound(err) {
			return model.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to delete meeting %s: %w", meetingID, err)
	}

	return nil
}

// CreateAttendee adds one attendee. Capabilities are left to the service
// defaults when caps is nil.
func (c *Client) CreateAttendee(ctx context.Context, meetingID, externalUserID string, caps *model.AttendeeCapabilities) (_ *model.Attendee, err error) {
	defer observe("CreateAttendee", time.Now(), &err)

	out, err := c.api.CreateAttendee(ctx, &chimesdkmeetings.CreateAttendeeInput{
		MeetingId:      aws.String(meetingID),
		ExternalUserId: aws.String(model.TruncateExternalID(externalUserID)),
		Capabilities:   toCapabilities(caps),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, model.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to create attendee in meeting %s: %w", meetingID, err)
	}

	attendee := toAttendee(out.Attendee)
	return &attendee, nil
}

// AddAttendees creates one attendee per comma-separated name, in batches of
// BatchCreateAttendeeLimit. The first failed batch aborts the operation.
func (c *Client) AddAttendees(ctx context.Context, meetingID, names string) (model.AttendeeList, error) {
	var items []types.CreateAttendeeRequestItem
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		items = append(items, types.CreateAttendeeRequestItem{
			ExternalUserId: aws.String(model.NewExternalUserID(name)),
			Capabilities: &types.AttendeeCapabilities{
				Audio:   types.MediaCapabilities(model.CapabilitySendReceive),
				Video:   types.MediaCapabilities(model.CapabilitySendReceive),
				Content: types.MediaCapabilities(model.CapabilityReceive),
			},
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no attendee names given")
	}

	created := make(model.AttendeeList, 0, len(items))
	for start := 0; start < len(items); start += BatchCreateAttendeeLimit {
		end := min(start+BatchCreateAttendeeLimit, len(items))

		attendees, err := c.batchCreateAttendee(ctx, meetingID, items[start:end])
		if err != nil {
			return nil, err
		}
		created = append(created, attendees...)
	}

	return created, nil
}

func (c *Client) batchCreateAttendee(ctx context.Context, meetingID string, items []types.CreateAttendeeRequestItem) (_ model.AttendeeList, err error) {
	defer observe("BatchCreateAttendee", time.Now(), &err)

	out, err := c.api.BatchCreateAttendee(ctx, &chimesdkmeetings.BatchCreateAttendeeInput{
		MeetingId: aws.String(meetingID),
		Attendees: items,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, model.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to batch create attendees in meeting %s: %w", meetingID, err)
	}

	if len(out.Errors) > 0 {
		first := out.Errors[0]
		return nil, fmt.Errorf("failed to create %d attendees in meeting %s: %s: %s",
			len(out.Errors), meetingID, aws.ToString(first.ErrorCode), aws.ToString(first.ErrorMessage))
	}

	attendees := make(model.AttendeeList, len(out.Attendees))
	for i := range out.Attendees {
		attendees[i] = toAttendee(&out.Attendees[i])
	}

	return attendees, nil
}

// ListAttendees returns one page of attendees and the token for the next
// page, empty when there is none.
func (c *Client) ListAttendees(ctx context.Context, meetingID, nextToken string) (_ model.AttendeeList, _ string, err error) {
	defer observe("ListAttendees", time.Now(), &err)

	input := &chimesdkmeetings.ListAttendeesInput{
		MeetingId:  aws.String(meetingID),
		MaxResults: aws.Int32(ListAttendeesPageSize),
	}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	out, err := c.api.ListAttendees(ctx, input)
	if err != nil {
		if isNotFound(err) {
			return nil, "", model.ErrMeetingNotFound
		}
		return nil, "", fmt.Errorf("failed to list attendees of meeting %s: %w", meetingID, err)
	}

	attendees := make(model.AttendeeList, len(out.Attendees))
	for i := range out.Attendees {
		attendees[i] = toAttendee(&out.Attendees[i])
	}

	return attendees, aws.ToString(out.NextToken), nil
}

// ListAllAttendees follows page tokens until the listing is exhausted.
func (c *Client) ListAllAttendees(ctx context.Context, meetingID string) (model.AttendeeList, error) {
	var (
		all   model.AttendeeList
		token string
	)

	for {
		page, next, err := c.ListAttendees(ctx, meetingID, token)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)

		if next == "" {
			return all, nil
		}
		token = next
	}
}

// FindAttendeeByExternalID scans attendee pages for an exact ExternalUserId
// match. It returns model.ErrAttendeeNotFound once the pages run out.
func (c *Client) FindAttendeeByExternalID(ctx context.Context, meetingID, externalUserID string) (*model.Attendee, error) {
	var token string

	for {
		page, next, err := c.ListAttendees(ctx, meetingID, token)
		if err != nil {
			return nil, err
		}

		for i := range page {
			if page[i].ExternalUserID == externalUserID {
				return &page[i], nil
			}
		}

		if len(page) == 0 || next == "" {
			return nil, model.ErrAttendeeNotFound
		}
		token = next
	}
}

func (c *Client) GetAttendee(ctx context.Context, meetingID, attendeeID string) (_ *model.Attendee, err error) {
	defer observe("GetAttendee", time.Now(), &err)

	out, err := c.api.GetAttendee(ctx, &chimesdkmeetings.GetAttendeeInput{
		MeetingId:  aws.String(meetingID),
		AttendeeId: aws.String(attendeeID),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", model.ErrAttendeeNotFound, errorMessage(err))
		}
		return nil, fmt.Errorf("failed to get attendee %s: %w", attendeeID, err)
	}

	attendee := toAttendee(out.Attendee)
	return &attendee, nil
}

func (c *Client) DeleteAttendee(ctx context.Context, meetingID, attendeeID string) (err error) {
	defer observe("DeleteAttendee", time.Now(), &err)

	_, err = c.api.DeleteAttendee(ctx, &chimesdkmeetings.DeleteAttendeeInput{
		MeetingId:  aws.String(meetingID),
		AttendeeId: aws.String(attendeeID),
	})
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s", model.ErrAttendeeNotFound, errorMessage(err))
		}
		return fmt.Errorf("failed to delete attendee %s: %w", attendeeID, err)
	}

	return nil
}

func (c *Client) UpdateAttendeeCapabilities(ctx context.Context, meetingID, attendeeID string, caps model.AttendeeCapabilities) (_ *model.Attendee, err error) {
	defer observe("UpdateAttendeeCapabilities", time.Now(), &err)

	out, err := c.api.UpdateAttendeeCapabilities(ctx, &chimesdkmeetings.UpdateAttendeeCapabilitiesInput{
		MeetingId:    aws.String(meetingID),
		AttendeeId:   aws.String(attendeeID),
		Capabilities: toCapabilities(&caps),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", model.ErrAttendeeNotFound, errorMessage(err))
		}
		return nil, fmt.Errorf("failed to update capabilities of attendee %s: %w", attendeeID, err)
	}

	attendee := toAttendee(out.Attendee)
	return &attendee, nil
}

func (c *Client) BatchUpdateAttendeeCapabilitiesExcept(ctx context.Context, meetingID string, excluded []string, caps model.AttendeeCapabilities) (err error) {
	defer observe("BatchUpdateAttendeeCapabilitiesExcept", time.Now(), &err)

	ids := make([]types.AttendeeIdItem, 0, len(excluded))
	for _, id := range excluded {
		ids = append(ids, types.AttendeeIdItem{AttendeeId: aws.String(id)})
	}

	_, err = c.api.BatchUpdateAttendeeCapabilitiesExcept(ctx, &chimesdkmeetings.BatchUpdateAttendeeCapabilitiesExceptInput{
		MeetingId:           aws.String(meetingID),
		ExcludedAttendeeIds: ids,
		Capabilities:        toCapabilities(&caps),
	})
	if err != nil {
		if isNotFound(err) {
			return model.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to batch update capabilities in meeting %s: %w", meetingID, err)
	}

	return nil
}

func (c *Client) StartTranscription(ctx context.Context, meetingID string, cfg model.TranscriptionConfig) (err error) {
	defer observe("StartMeetingTranscription", time.Now(), &err)

	_, err = c.api.StartMeetingTranscription(ctx, &chimesdkmeetings.StartMeetingTranscriptionInput{
		MeetingId:                  aws.String(meetingID),
		TranscriptionConfiguration: toTranscriptionConfiguration(cfg),
	})
	if err != nil {
		if isNotFound(err) {
			return model.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to start transcription in meeting %s: %w", meetingID, err)
	}

	return nil
}

func (c *Client) StopTranscription(ctx context.Context, meetingID string) (err error) {
	defer observe("StopMeetingTranscription", time.Now(), &err)

	_, err = c.api.StopMeetingTranscription(ctx, &chimesdkmeetings.StopMeetingTranscriptionInput{
		MeetingId: aws.String(meetingID),
	})
	if err != nil {
		if isNotFound(err) {
			return model.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to stop transcription in meeting %s: %w", meetingID, err)
	}

	return nil
}

// Credentials resolves the credentials the meetings client signs with.
func (c *Client) Credentials(ctx context.Context) (*model.Credentials, error) {
	if c.credentials == nil {
		return nil, fmt.Errorf("no credentials provider configured")
	}

	creds, err := c.credentials.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve credentials: %w", err)
	}

	result := &model.Credentials{
		AccessKeyID:     creds.AccessKeyID,
		SecretAccessKey: creds.SecretAccessKey,
		SessionToken:    creds.SessionToken,
	}
	if creds.CanExpire {
		result.Expiration = creds.Expires.UTC().Format(time.RFC3339)
	}

	return result, nil
}

func isNotFound(err error) bool {
	var notFound *types.NotFoundException
	return errors.As(err, &notFound)
}

func errorMessage(err error) string {
	var notFound *types.NotFoundException
	if errors.As(err, &notFound) {
		return notFound.ErrorMessage()
	}
	return err.Error()
}

func observe(operation string, started time.Time, err *error) {
	status := metrics.StatusSuccess
	switch {
	case *err == nil:
	case errors.Is(*err, model.ErrMeetingNotFound), errors.Is(*err, model.ErrAttendeeNotFound):
		status = metrics.StatusNotFound
	default:
		status = metrics.StatusFailed
	}
	metrics.RecordRemoteCall(serviceName, operation, status, started)
}
