package model

const (
	CapabilitySendReceive = "SendReceive"
	CapabilitySend        = "Send"
	CapabilityReceive     = "Receive"
	CapabilityNone        = "None"
)

type AttendeeList []Attendee

type Attendee struct {
	AttendeeID     string                `json:"AttendeeId"`
	ExternalUserID string                `json:"ExternalUserId"`
	JoinToken      string                `json:"JoinToken,omitempty"`
	Capabilities   *AttendeeCapabilities `json:"Capabilities,omitempty"`
}

type AttendeeCapabilities struct {
	Audio   string `json:"Audio"`
	Video   string `json:"Video"`
	Content string `json:"Content"`
}

// AttendeeEnvelope is the {"Attendee": {...}} wrapper the client SDK expects.
type AttendeeEnvelope struct {
	Attendee Attendee `json:"Attendee"`
}

// RosterEntry is an invited participant stored alongside a session.
type RosterEntry struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	ExternalUserID  string `json:"externalUserId"`
	MeetingPasscode string `json:"meetingPasscode"`
}

type Roster []RosterEntry

// Find returns the entry whose external user id and passcode both match.
func (r Roster) Find(externalUserID, passcode string) (RosterEntry, bool) {
	for _, entry := range r {
		if entry.ExternalUserID == externalUserID && entry.MeetingPasscode == passcode {
			return entry, true
		}
	}
	return RosterEntry{}, false
}

type AttendeesResponse struct {
	Attendees AttendeeList `json:"Attendees"`
}
