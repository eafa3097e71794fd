package model

// MeetingsRequest is the JSON body of POST /meetings.
type MeetingsRequest struct {
	Title             string `json:"title"`
	Attendees         Roster `json:"attendees"`
	VideoResolution   string `json:"videoResolution,omitempty"`
	ContentResolution string `json:"contentResolution,omitempty"`
}

// JoinParams are the query parameters of POST /join.
type JoinParams struct {
	Title                    string
	Name                     string
	Passcode                 string
	Region                   string
	PrimaryExternalMeetingID string
	EchoReduction            *bool
	VideoResolution          string
	ContentResolution        string
	AttendeeCount            *int
	AudioCapability          string
	VideoCapability          string
	ContentCapability        string
}

// Features returns the meeting features requested through ns_es, v_rs, c_rs
// and a_cnt, or nil when none was requested.
func (p *JoinParams) Features() *MeetingFeatures {
	features := &MeetingFeatures{}
	requested := false

	if p.EchoReduction != nil && *p.EchoReduction {
		features.Audio = &AudioFeatures{EchoReduction: EchoReductionAvailable}
		requested = true
	}
	if p.VideoResolution == "FHD" || p.VideoResolution == "None" {
		features.Video = &VideoFeatures{MaxResolution: p.VideoResolution}
		requested = true
	}
	if p.ContentResolution == "UHD" || p.ContentResolution == "None" {
		features.Content = &ContentFeatures{MaxResolution: p.ContentResolution}
		requested = true
	}
	if p.AttendeeCount != nil {
		features.Attendee = &AttendeeFeatures{MaxCount: int32(*p.AttendeeCount)}
		requested = true
	}

	if !requested {
		return nil
	}
	return features
}

// Capabilities returns the explicit attendee capabilities, which only apply
// to meetings joined without a primary meeting.
func (p *JoinParams) Capabilities() *AttendeeCapabilities {
	if p.AudioCapability == "" || p.PrimaryExternalMeetingID != "" {
		return nil
	}

	return &AttendeeCapabilities{
		Audio:   p.AudioCapability,
		Video:   p.VideoCapability,
		Content: p.ContentCapability,
	}
}

type TranscriptionParams struct {
	Title        string
	Engine       string
	Language     string
	Region       string
	StreamParams TranscriptionStreamParams
}

// Config assembles the engine settings. Only fields present in the stream
// params are forwarded.
func (p *TranscriptionParams) Config() TranscriptionConfig {
	s := p.StreamParams

	switch p.Engine {
	case EngineTranscribe:
		return TranscriptionConfig{Transcribe: &TranscribeSettings{
			LanguageCode:                      p.Language,
			Region:                            p.Region,
			ContentIdentificationType:         deref(s.ContentIdentificationType),
			ContentRedactionType:              deref(s.ContentRedactionType),
			EnablePartialResultsStabilization: s.EnablePartialResultsStability,
			PartialResultsStability:           deref(s.PartialResultsStability),
			PiiEntityTypes:                    deref(s.PiiEntityTypes),
			LanguageModelName:                 deref(s.LanguageModelName),
			IdentifyLanguage:                  s.IdentifyLanguage,
			LanguageOptions:                   deref(s.LanguageOptions),
			PreferredLanguage:                 deref(s.PreferredLanguage),
			VocabularyNames:                   deref(s.VocabularyNames),
			VocabularyFilterNames:             deref(s.VocabularyFilterNames),
		}}
	case EngineTranscribeMedical:
		return TranscriptionConfig{TranscribeMedical: &TranscribeMedicalSettings{
			LanguageCode:              p.Language,
			Specialty:                 MedicalSpecialtyPrimaryCare,
			Type:                      MedicalTypeConversation,
			Region:                    p.Region,
			ContentIdentificationType: deref(s.ContentIdentificationType),
		}}
	default:
		return TranscriptionConfig{}
	}
}

type CapabilitiesParams struct {
	Title        string
	AttendeeID   string
	AttendeeIDs  []string
	Capabilities AttendeeCapabilities
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
