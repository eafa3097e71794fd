package model

const (
	MaxExternalIDLength = 64

	DefaultVideoResolution   = "HD"
	DefaultContentResolution = "FHD"
	DefaultAttendeeMaxCount  = 250

	EchoReductionAvailable = "AVAILABLE"
)

type MeetingList []Meeting

// Meeting mirrors the Chime SDK meeting descriptor. Field names are kept in
// the service's casing because the browser client reads them as-is.
type Meeting struct {
	MeetingID                string           `json:"MeetingId"`
	MeetingArn               string           `json:"MeetingArn,omitempty"`
	ExternalMeetingID        string           `json:"ExternalMeetingId,omitempty"`
	MediaRegion              string           `json:"MediaRegion,omitempty"`
	PrimaryMeetingID         string           `json:"PrimaryMeetingId,omitempty"`
	PrimaryExternalMeetingID string           `json:"PrimaryExternalMeetingId,omitempty"`
	MediaPlacement           *MediaPlacement  `json:"MediaPlacement,omitempty"`
	MeetingFeatures          *MeetingFeatures `json:"MeetingFeatures,omitempty"`
	TenantIDs                []string         `json:"TenantIds,omitempty"`
}

type MediaPlacement struct {
	AudioHostURL      string `json:"AudioHostUrl,omitempty"`
	AudioFallbackURL  string `json:"AudioFallbackUrl,omitempty"`
	SignalingURL      string `json:"SignalingUrl,omitempty"`
	TurnControlURL    string `json:"TurnControlUrl,omitempty"`
	ScreenDataURL     string `json:"ScreenDataUrl,omitempty"`
	ScreenViewingURL  string `json:"ScreenViewingUrl,omitempty"`
	ScreenSharingURL  string `json:"ScreenSharingUrl,omitempty"`
	EventIngestionURL string `json:"EventIngestionUrl,omitempty"`
}

type MeetingFeatures struct {
	Audio    *AudioFeatures    `json:"Audio,omitempty"`
	Video    *VideoFeatures    `json:"Video,omitempty"`
	Content  *ContentFeatures  `json:"Content,omitempty"`
	Attendee *AttendeeFeatures `json:"Attendee,omitempty"`
}

type AudioFeatures struct {
	EchoReduction string `json:"EchoReduction,omitempty"`
}

type VideoFeatures struct {
	MaxResolution string `json:"MaxResolution,omitempty"`
}

type ContentFeatures struct {
	MaxResolution string `json:"MaxResolution,omitempty"`
}

type AttendeeFeatures struct {
	MaxCount int32 `json:"MaxCount,omitempty"`
}

// MeetingEnvelope is the {"Meeting": {...}} wrapper the client SDK expects.
type MeetingEnvelope struct {
	Meeting Meeting `json:"Meeting"`
}

// CreateMeetingParams describes a meeting to create. Empty fields are not
// sent to the service.
type CreateMeetingParams struct {
	ExternalMeetingID string
	MediaRegion       string
	PrimaryMeetingID  string
	Features          *MeetingFeatures
}

// DefaultMeetingFeatures is the feature set used by POST /meetings.
func DefaultMeetingFeatures(videoResolution, contentResolution string) *MeetingFeatures {
	if videoResolution == "" {
		videoResolution = DefaultVideoResolution
	}
	if contentResolution == "" {
		contentResolution = DefaultContentResolution
	}

	return &MeetingFeatures{
		Audio:    &AudioFeatures{EchoReduction: EchoReductionAvailable},
		Video:    &VideoFeatures{MaxResolution: videoResolution},
		Content:  &ContentFeatures{MaxResolution: contentResolution},
		Attendee: &AttendeeFeatures{MaxCount: DefaultAttendeeMaxCount},
	}
}
