package model

import "errors"

var (
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrSessionNotFound  = errors.New("session not found")
)
