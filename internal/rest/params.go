package rest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/s21platform/meeting-service/internal/model"
)

func requiredQuery(q url.Values, name string) (string, error) {
	var value string
	if err := runtime.BindQueryParameter("form", true, true, name, q, &value); err != nil {
		return "", err
	}
	return value, nil
}

func optionalQuery(q url.Values, name string) (string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, q, &value); err != nil {
		return "", err
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

func bindJoinParams(q url.Values) (*model.JoinParams, error) {
	params := &model.JoinParams{}

	var err error
	for name, dest := range map[string]*string{
		"title":                     &params.Title,
		"name":                      &params.Name,
		"passcode":                  &params.Passcode,
		"region":                    &params.Region,
		"primaryExternalMeetingId":  &params.PrimaryExternalMeetingID,
		"v_rs":                      &params.VideoResolution,
		"c_rs":                      &params.ContentResolution,
		"attendeeAudioCapability":   &params.AudioCapability,
		"attendeeVideoCapability":   &params.VideoCapability,
		"attendeeContentCapability": &params.ContentCapability,
	} {
		if *dest, err = optionalQuery(q, name); err != nil {
			return nil, err
		}
	}

	if err = runtime.BindQueryParameter("form", true, false, "ns_es", q, &params.EchoReduction); err != nil {
		return nil, err
	}
	if err = runtime.BindQueryParameter("form", true, false, "a_cnt", q, &params.AttendeeCount); err != nil {
		return nil, err
	}

	return params, nil
}

func bindTranscriptionParams(q url.Values) (*model.TranscriptionParams, error) {
	params := &model.TranscriptionParams{}

	var err error
	if params.Title, err = requiredQuery(q, "title"); err != nil {
		return nil, err
	}
	if params.Engine, err = optionalQuery(q, "engine"); err != nil {
		return nil, err
	}
	if params.Language, err = optionalQuery(q, "language"); err != nil {
		return nil, err
	}
	if params.Region, err = optionalQuery(q, "region"); err != nil {
		return nil, err
	}

	raw, err := optionalQuery(q, "transcriptionStreamParams")
	if err != nil {
		return nil, err
	}
	if raw != "" {
		if err = json.Unmarshal([]byte(raw), &params.StreamParams); err != nil {
			return nil, fmt.Errorf("invalid transcriptionStreamParams: %w", err)
		}
	}

	return params, nil
}

func bindCapabilitiesParams(q url.Values, withAttendeeID bool) (*model.CapabilitiesParams, error) {
	params := &model.CapabilitiesParams{}

	var err error
	if params.Title, err = requiredQuery(q, "title"); err != nil {
		return nil, err
	}

	if withAttendeeID {
		if params.AttendeeID, err = requiredQuery(q, "attendeeId"); err != nil {
			return nil, err
		}
	} else {
		ids, err := requiredQuery(q, "attendeeIds")
		if err != nil {
			return nil, err
		}
		params.AttendeeIDs = splitList(ids)
	}

	if params.Capabilities.Audio, err = requiredQuery(q, "audioCapability"); err != nil {
		return nil, err
	}
	if params.Capabilities.Video, err = requiredQuery(q, "videoCapability"); err != nil {
		return nil, err
	}
	if params.Capabilities.Content, err = requiredQuery(q, "contentCapability"); err != nil {
		return nil, err
	}

	return params, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
