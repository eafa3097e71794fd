package chime

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings/types"

	"github.com/s21platform/meeting-service/internal/model"
)

func toMeeting(m *types.Meeting) model.Meeting {
	if m == nil {
		return model.Meeting{}
	}

	meeting := model.Meeting{
		MeetingID:         aws.ToString(m.MeetingId),
		MeetingArn:        aws.ToString(m.MeetingArn),
		ExternalMeetingID: aws.ToString(m.ExternalMeetingId),
		MediaRegion:       aws.ToString(m.MediaRegion),
		PrimaryMeetingID:  aws.ToString(m.PrimaryMeetingId),
		TenantIDs:         m.TenantIds,
	}

	if p := m.MediaPlacement; p != nil {
		meeting.MediaPlacement = &model.MediaPlacement{
			AudioHostURL:      aws.ToString(p.AudioHostUrl),
			AudioFallbackURL:  aws.ToString(p.AudioFallbackUrl),
			SignalingURL:      aws.ToString(p.SignalingUrl),
			TurnControlURL:    aws.ToString(p.TurnControlUrl),
			ScreenDataURL:     aws.ToString(p.ScreenDataUrl),
			ScreenViewingURL:  aws.ToString(p.ScreenViewingUrl),
			ScreenSharingURL:  aws.ToString(p.ScreenSharingUrl),
			EventIngestionURL: aws.ToString(p.EventIngestionUrl),
		}
	}

	if f := m.MeetingFeatures; f != nil {
		features := &model.MeetingFeatures{}
		if f.Audio != nil {
			features.Audio = &model.AudioFeatures{EchoReduction: string(f.Audio.EchoReduction)}
		}
		if f.Video != nil {
			features.Video = &model.VideoFeatures{MaxResolution: string(f.Video.MaxResolution)}
		}
		if f.Content != nil {
			features.Content = &model.ContentFeatures{MaxResolution: string(f.Content.MaxResolution)}
		}
		if f.Attendee != nil {
			features.Attendee = &model.AttendeeFeatures{MaxCount: aws.ToInt32(f.Attendee.MaxCount)}
		}
		meeting.MeetingFeatures = features
	}

	return meeting
}

func toAttendee(a *types.Attendee) model.Attendee {
	if a == nil {
		return model.Attendee{}
	}

	attendee := model.Attendee{
		AttendeeID:     aws.ToString(a.AttendeeId),
		ExternalUserID: aws.ToString(a.ExternalUserId),
		JoinToken:      aws.ToString(a.JoinToken),
	}
	if a.Capabilities != nil {
		attendee.Capabilities = &model.AttendeeCapabilities{
			Audio:   string(a.Capabilities.Audio),
			Video:   string(a.Capabilities.Video),
			Content: string(a.Capabilities.Content),
		}
	}

	return attendee
}

func toCapabilities(caps *model.AttendeeCapabilities) *types.AttendeeCapabilities {
	if caps == nil {
		return nil
	}

	return &types.AttendeeCapabilities{
		Audio:   types.MediaCapabilities(caps.Audio),
		Video:   types.MediaCapabilities(caps.Video),
		Content: types.MediaCapabilities(caps.Content),
	}
}

func toFeaturesConfiguration(f *model.MeetingFeatures) *types.MeetingFeaturesConfiguration {
	if f == nil {
		return nil
	}

	cfg := &types.MeetingFeaturesConfiguration{}
	if f.Audio != nil {
		cfg.Audio = &types.AudioFeatures{EchoReduction: types.MeetingFeatureStatus(f.Audio.EchoReduction)}
	}
	if f.Video != nil {
		cfg.Video = &types.VideoFeatures{MaxResolution: types.VideoResolution(f.Video.MaxResolution)}
	}
	if f.Content != nil {
		cfg.Content = &types.ContentFeatures{MaxResolution: types.ContentResolution(f.Content.MaxResolution)}
	}
	if f.Attendee != nil {
		cfg.Attendee = &types.AttendeeFeatures{MaxCount: aws.Int32(f.Attendee.MaxCount)}
	}

	return cfg
}

func toTranscriptionConfiguration(cfg model.TranscriptionConfig) *types.TranscriptionConfiguration {
	out := &types.TranscriptionConfiguration{}

	if s := cfg.Transcribe; s != nil {
		out.EngineTranscribeSettings = &types.EngineTranscribeSettings{
			LanguageCode:                      types.TranscribeLanguageCode(s.LanguageCode),
			Region:                            types.TranscribeRegion(s.Region),
			ContentIdentificationType:         types.TranscribeContentIdentificationType(s.ContentIdentificationType),
			ContentRedactionType:              types.TranscribeContentRedactionType(s.ContentRedactionType),
			EnablePartialResultsStabilization: aws.ToBool(s.EnablePartialResultsStabilization),
			PartialResultsStability:           types.TranscribePartialResultsStability(s.PartialResultsStability),
			PiiEntityTypes:                    optionalString(s.PiiEntityTypes),
			LanguageModelName:                 optionalString(s.LanguageModelName),
			IdentifyLanguage:                  aws.ToBool(s.IdentifyLanguage),
			LanguageOptions:                   optionalString(s.LanguageOptions),
			PreferredLanguage:                 types.TranscribeLanguageCode(s.PreferredLanguage),
			VocabularyNames:                   optionalString(s.VocabularyNames),
			VocabularyFilterNames:             optionalString(s.VocabularyFilterNames),
		}
	}

	if s := cfg.TranscribeMedical; s != nil {
		out.EngineTranscribeMedicalSettings = &types.EngineTranscribeMedicalSettings{
			LanguageCode:              types.TranscribeMedicalLanguageCode(s.LanguageCode),
			Specialty:                 types.TranscribeMedicalSpecialty(s.Specialty),
			Type:                      types.TranscribeMedicalType(s.Type),
			Region:                    types.TranscribeMedicalRegion(s.Region),
			ContentIdentificationType: types.TranscribeMedicalContentIdentificationType(s.ContentIdentificationType),
		}
	}

	return out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}
