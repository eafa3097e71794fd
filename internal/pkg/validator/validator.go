package validator

import (
	"fmt"
	"strings"

	"github.com/s21platform/meeting-service/internal/model"
)

const maxAttendeeCount = 250

var (
	videoResolutions   = []string{"HD", "FHD", "None"}
	contentResolutions = []string{"FHD", "UHD", "None"}
	capabilities       = []string{
		model.CapabilitySendReceive,
		model.CapabilitySend,
		model.CapabilityReceive,
		model.CapabilityNone,
	}
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateMeetingsRequest(req *model.MeetingsRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if req.VideoResolution != "" && !oneOf(req.VideoResolution, videoResolutions) {
		return fmt.Errorf("videoResolution '%s' is not supported", req.VideoResolution)
	}

	if req.ContentResolution != "" && !oneOf(req.ContentResolution, contentResolutions) {
		return fmt.Errorf("contentResolution '%s' is not supported", req.ContentResolution)
	}

	return nil
}

func (v *Validator) ValidateJoinParams(params *model.JoinParams) error {
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Name) == "" {
		return fmt.Errorf("Need parameters: title and name")
	}

	if params.VideoResolution != "" && !oneOf(params.VideoResolution, videoResolutions) {
		return fmt.Errorf("v_rs '%s' is not supported", params.VideoResolution)
	}

	if params.ContentResolution != "" && !oneOf(params.ContentResolution, contentResolutions) {
		return fmt.Errorf("c_rs '%s' is not supported", params.ContentResolution)
	}

	if n := params.AttendeeCount; n != nil && (*n <= 1 || *n > maxAttendeeCount) {
		return fmt.Errorf("a_cnt must be between 2 and %d, got %d", maxAttendeeCount, *n)
	}

	if params.AudioCapability != "" {
		caps := model.AttendeeCapabilities{
			Audio:   params.AudioCapability,
			Video:   params.VideoCapability,
			Content: params.ContentCapability,
		}
		if err := v.ValidateCapabilities(caps); err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) ValidateCapabilities(caps model.AttendeeCapabilities) error {
	for media, value := range map[string]string{
		"audio":   caps.Audio,
		"video":   caps.Video,
		"content": caps.Content,
	} {
		if !oneOf(value, capabilities) {
			return fmt.Errorf("%s capability '%s' is not supported", media, value)
		}
	}

	return nil
}

func (v *Validator) ValidateTranscriptionParams(params *model.TranscriptionParams) error {
	if strings.TrimSpace(params.Title) == "" {
		return fmt.Errorf("title is required")
	}

	switch params.Engine {
	case model.EngineTranscribe, model.EngineTranscribeMedical:
	default:
		return fmt.Errorf("Unknown transcription engine")
	}

	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
