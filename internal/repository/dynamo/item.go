package dynamo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/s21platform/meeting-service/internal/model"
)

// sessionItem is the table layout shared with the browser demo stack:
// the meeting is stored as a JSON string under Data and TTL is epoch seconds.
type sessionItem struct {
	Title         string         `dynamodbav:"Title"`
	Data          string         `dynamodbav:"Data"`
	Attendees     []attendeeItem `dynamodbav:"Attendees,omitempty"`
	Capture       string         `dynamodbav:"Capture,omitempty"`
	LiveConnector string         `dynamodbav:"LiveConnector,omitempty"`
	TTL           int64          `dynamodbav:"TTL"`
}

type attendeeItem struct {
	Name            string `dynamodbav:"Name"`
	Role            string `dynamodbav:"Role"`
	ExternalUserID  string `dynamodbav:"ExternalUserId"`
	MeetingPasscode string `dynamodbav:"MeetingPasscode"`
}

func toItem(session *model.Session) (sessionItem, error) {
	data, err := json.Marshal(session.Meeting)
	if err != nil {
		return sessionItem{}, fmt.Errorf("failed to marshal meeting: %w", err)
	}

	item := sessionItem{
		Title: session.Title,
		Data:  string(data),
		TTL:   session.ExpiresAt.Unix(),
	}

	for _, a := range session.Attendees {
		item.Attendees = append(item.Attendees, attendeeItem{
			Name:            a.Name,
			Role:            a.Role,
			ExternalUserID:  a.ExternalUserID,
			MeetingPasscode: a.MeetingPasscode,
		})
	}

	if item.Capture, err = marshalPipeline(session.Capture); err != nil {
		return sessionItem{}, err
	}
	if item.LiveConnector, err = marshalPipeline(session.LiveConnector); err != nil {
		return sessionItem{}, err
	}

	return item, nil
}

func fromItem(item sessionItem) (*model.Session, error) {
	session := &model.Session{
		Title:     item.Title,
		ExpiresAt: time.Unix(item.TTL, 0).UTC(),
	}

	if err := json.Unmarshal([]byte(item.Data), &session.Meeting); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meeting for %s: %w", item.Title, err)
	}

	for _, a := range item.Attendees {
		session.Attendees = append(session.Attendees, model.RosterEntry{
			Name:            a.Name,
			Role:            a.Role,
			ExternalUserID:  a.ExternalUserID,
			MeetingPasscode: a.MeetingPasscode,
		})
	}

	var err error
	if session.Capture, err = unmarshalPipeline(item.Capture); err != nil {
		return nil, err
	}
	if session.LiveConnector, err = unmarshalPipeline(item.LiveConnector); err != nil {
		return nil, err
	}

	return session, nil
}

func marshalPipeline(p *model.Pipeline) (string, error) {
	if p == nil {
		return "", nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal pipeline: %w", err)
	}

	return string(data), nil
}

func unmarshalPipeline(data string) (*model.Pipeline, error) {
	if data == "" {
		return nil, nil
	}

	var p model.Pipeline
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pipeline: %w", err)
	}

	return &p, nil
}
