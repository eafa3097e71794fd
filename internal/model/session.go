package model

import "time"

type SessionList []Session

// Session is the locally cached state for one meeting title.
type Session struct {
	Title         string    `json:"title"`
	Meeting       Meeting   `json:"meeting"`
	Attendees     Roster    `json:"attendees"`
	Capture       *Pipeline `json:"capture,omitempty"`
	LiveConnector *Pipeline `json:"liveConnector,omitempty"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// JoinInfo is the body returned by POST /join.
type JoinInfo struct {
	Meeting                  MeetingEnvelope  `json:"Meeting"`
	Attendee                 AttendeeEnvelope `json:"Attendee"`
	PrimaryExternalMeetingID string           `json:"PrimaryExternalMeetingId,omitempty"`
}

type JoinResponse struct {
	JoinInfo JoinInfo `json:"JoinInfo"`
}
