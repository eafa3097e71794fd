package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/meeting-service/internal/config"
	"github.com/s21platform/meeting-service/internal/model"
)

const (
	audioFile       = "speech.mp3"
	stereoAudioFile = "speech_stereo.mp3"
)

var errPrimaryMeetingMissing = errors.New("Primary meeting has not been created")

type Handler struct {
	store     SessionStore
	meetings  MeetingsClient
	pipelines PipelinesClient
	verifier  UserVerifier
	validator Validator

	assets    config.Assets
	region    string
	ttl       time.Duration
	listLimit int
	now       func() time.Time
}

// New builds the handler. verifier may be nil, in which case joins are not
// checked against the LMS.
func New(
	store SessionStore,
	meetings MeetingsClient,
	pipelines PipelinesClient,
	verifier UserVerifier,
	validator Validator,
	cfg *config.Config,
) *Handler {
	return &Handler{
		store:     store,
		meetings:  meetings,
		pipelines: pipelines,
		verifier:  verifier,
		validator: validator,
		assets:    cfg.Assets,
		region:    cfg.AWS.Region,
		ttl:       cfg.Sessions.TTL,
		listLimit: cfg.Sessions.ListLimit,
		now:       time.Now,
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Index")

	page, err := os.ReadFile(filepath.Join(h.assets.Dir, h.assets.App+".html"))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read index page: %v", err))
		h.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (h *Handler) Meetings(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Meetings")

	var req model.MeetingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateMeetingsRequest(&req); err != nil {
		logger.Error(fmt.Sprintf("meetings validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	session, meeting, err := h.lookupMeeting(ctx, req.Title)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to look up meeting %s: %v", req.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if meeting == nil {
		meeting, err = h.meetings.CreateMeeting(ctx, model.CreateMeetingParams{
			ExternalMeetingID: req.Title,
			MediaRegion:       h.region,
			Features:          model.DefaultMeetingFeatures(req.VideoResolution, req.ContentResolution),
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create meeting %s: %v", req.Title, err))
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Info(fmt.Sprintf("created meeting %s for %s", meeting.MeetingID, req.Title))
	}

	updated := h.newSession(req.Title, meeting, req.Attendees)
	if session != nil && session.Meeting.MeetingID == meeting.MeetingID {
		updated.Capture = session.Capture
		updated.LiveConnector = session.LiveConnector
	}

	if err = h.store.Put(ctx, updated); err != nil {
		logger.Error(fmt.Sprintf("failed to store session %s: %v", req.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessions, err := h.store.List(ctx, h.listLimit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list sessions: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// the resolved meeting leads even when the list limit cut it off
	meetings := make(model.MeetingList, 0, len(sessions)+1)
	meetings = append(meetings, *meeting)
	for _, s := range sessions {
		if s.Meeting.MeetingID == meeting.MeetingID {
			continue
		}
		meetings = append(meetings, s.Meeting)
	}
	if len(meetings) > h.listLimit && h.listLimit > 0 {
		meetings = meetings[:h.listLimit]
	}

	h.writeJSON(w, meetings, http.StatusOK)
}

func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Join")

	params, err := bindJoinParams(r.URL.Query())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to bind join params: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.validator.ValidateJoinParams(params); err != nil {
		logger.Error(fmt.Sprintf("join validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	session, err := h.store.Get(ctx, params.Title)
	if err != nil && !errors.Is(err, model.ErrSessionNotFound) {
		logger.Error(fmt.Sprintf("failed to get session %s: %v", params.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var roster model.Roster
	if session != nil {
		roster = session.Attendees
	}
	if len(roster) > 0 {
		if _, ok := roster.Find(params.Name, params.Passcode); !ok {
			logger.Warn(fmt.Sprintf("attendee %s is not on the roster of %s", params.Name, params.Title))
			h.writeError(w, "Attendee not found", http.StatusBadRequest)
			return
		}
	}

	if h.verifier != nil {
		if err = h.verifier.VerifyUser(ctx, params.Name); err != nil {
			logger.Warn(fmt.Sprintf("failed to verify user %s: %v", params.Name, err))
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	var primary *model.Meeting
	if params.PrimaryExternalMeetingID != "" {
		primary, err = h.resolvePrimaryMeeting(ctx, params.PrimaryExternalMeetingID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to resolve primary meeting %s: %v", params.PrimaryExternalMeetingID, err))
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Info(fmt.Sprintf("retrieved primary meeting %s for %s", primary.MeetingID, params.PrimaryExternalMeetingID))
	}

	var meeting *model.Meeting
	if session != nil {
		meeting = &session.Meeting
	} else if model.IsMeetingID(params.Title) {
		meeting, err = h.meetings.GetMeeting(ctx, params.Title)
		if err != nil && !errors.Is(err, model.ErrMeetingNotFound) {
			logger.Error(fmt.Sprintf("failed to get meeting %s: %v", params.Title, err))
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if meeting != nil {
			if err = h.store.Put(ctx, h.newSession(params.Title, meeting, nil)); err != nil {
				logger.Error(fmt.Sprintf("failed to store session %s: %v", params.Title, err))
				h.writeError(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
	}

	created := false
	if meeting == nil {
		meeting, err = h.createJoinMeeting(ctx, params, primary, roster)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create meeting %s: %v", params.Title, err))
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		created = true
		logger.Info(fmt.Sprintf("created meeting %s for %s", meeting.MeetingID, params.Title))
	}

	externalUserID := model.NewExternalUserID(params.Name)

	attendee, err := h.meetings.CreateAttendee(ctx, meeting.MeetingID, externalUserID, params.Capabilities())
	if errors.Is(err, model.ErrMeetingNotFound) && !created {
		logger.Warn(fmt.Sprintf("stored meeting %s for %s is gone, recreating", meeting.MeetingID, params.Title))

		if err = h.store.Delete(ctx, params.Title); err != nil {
			logger.Error(fmt.Sprintf("failed to drop stale session %s: %v", params.Title, err))
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}

		meeting, err = h.createJoinMeeting(ctx, params, primary, roster)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to recreate meeting %s: %v", params.Title, err))
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}

		attendee, err = h.meetings.CreateAttendee(ctx, meeting.MeetingID, externalUserID, params.Capabilities())
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create attendee in %s: %v", params.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := model.JoinResponse{
		JoinInfo: model.JoinInfo{
			Meeting:                  model.MeetingEnvelope{Meeting: *meeting},
			Attendee:                 model.AttendeeEnvelope{Attendee: *attendee},
			PrimaryExternalMeetingID: meeting.PrimaryExternalMeetingID,
		},
	}

	h.writeJSON(w, response, http.StatusCreated)
}

func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("End")

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.meetings.DeleteMeeting(r.Context(), session.Meeting.MeetingID)
	if err != nil && !errors.Is(err, model.ErrMeetingNotFound) {
		logger.Error(fmt.Sprintf("failed to delete meeting %s: %v", session.Meeting.MeetingID, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.store.Delete(r.Context(), session.Title); err != nil {
		logger.Error(fmt.Sprintf("failed to delete session %s: %v", session.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeEmpty(w, http.StatusOK)
}

func (h *Handler) StartCapture(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StartCapture")

	if !h.pipelines.CaptureEnabled() {
		logger.Warn("cloud media capture not available")
		h.writeEmpty(w, http.StatusInternalServerError)
		return
	}

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	pipeline, err := h.pipelines.StartCapture(r.Context(), session.Meeting.MeetingID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start capture for %s: %v", session.Title, err))
		h.writePipelineError(w, err)
		return
	}

	session.Capture = pipeline
	if err = h.store.Put(r.Context(), session); err != nil {
		logger.Error(fmt.Sprintf("failed to store session %s: %v", session.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, model.CapturePipelineResponse{MediaCapturePipeline: *pipeline}, http.StatusCreated)
}

func (h *Handler) EndCapture(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EndCapture")

	if !h.pipelines.CaptureEnabled() {
		logger.Warn("cloud media capture not available")
		h.writeEmpty(w, http.StatusInternalServerError)
		return
	}

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if session.Capture == nil {
		h.writeError(w, fmt.Sprintf("no capture pipeline for %s", session.Title), http.StatusBadRequest)
		return
	}

	if err := h.pipelines.StopCapture(r.Context(), session.Capture.MediaPipelineID); err != nil {
		logger.Error(fmt.Sprintf("failed to stop capture for %s: %v", session.Title, err))
		h.writePipelineError(w, err)
		return
	}

	session.Capture = nil
	if err := h.store.Put(r.Context(), session); err != nil {
		logger.Error(fmt.Sprintf("failed to store session %s: %v", session.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeEmpty(w, http.StatusOK)
}

func (h *Handler) StartLiveConnector(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StartLiveConnector")

	if !h.pipelines.LiveConnectorEnabled() {
		logger.Warn("live connector not available")
		h.writeEmpty(w, http.StatusInternalServerError)
		return
	}

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	pipeline, err := h.pipelines.StartLiveConnector(r.Context(), session.Meeting.MeetingID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start live connector for %s: %v", session.Title, err))
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	session.LiveConnector = pipeline
	if err = h.store.Put(r.Context(), session); err != nil {
		logger.Error(fmt.Sprintf("failed to store session %s: %v", session.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, model.LiveConnectorPipelineResponse{MediaLiveConnectorPipeline: *pipeline}, http.StatusCreated)
}

func (h *Handler) EndLiveConnector(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EndLiveConnector")

	if !h.pipelines.LiveConnectorEnabled() {
		logger.Warn("live connector not available")
		h.writeEmpty(w, http.StatusInternalServerError)
		return
	}

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if session.LiveConnector == nil {
		h.writeError(w, fmt.Sprintf("no live connector pipeline for %s", session.Title), http.StatusBadRequest)
		return
	}

	if err := h.pipelines.StopLiveConnector(r.Context(), session.LiveConnector.MediaPipelineID); err != nil {
		logger.Error(fmt.Sprintf("failed to stop live connector for %s: %v", session.Title, err))
		h.writePipelineError(w, err)
		return
	}

	session.LiveConnector = nil
	if err := h.store.Put(r.Context(), session); err != nil {
		logger.Error(fmt.Sprintf("failed to store session %s: %v", session.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeEmpty(w, http.StatusOK)
}

func (h *Handler) DeleteAttendee(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteAttendee")

	attendeeID, err := requiredQuery(r.URL.Query(), "attendeeId")
	if err != nil {
		logger.Error(fmt.Sprintf("failed to bind attendeeId: %v", err))
		h.writeError(w, "Need parameters: title, attendeeId", http.StatusBadRequest)
		return
	}

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.meetings.DeleteAttendee(r.Context(), session.Meeting.MeetingID, attendeeID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete attendee %s: %v", attendeeID, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeEmpty(w, http.StatusCreated)
}

func (h *Handler) StartTranscription(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StartTranscription")

	params, err := bindTranscriptionParams(r.URL.Query())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to bind transcription params: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.validator.ValidateTranscriptionParams(params); err != nil {
		logger.Error(fmt.Sprintf("transcription validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.store.Get(r.Context(), params.Title)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session %s: %v", params.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.meetings.StartTranscription(r.Context(), session.Meeting.MeetingID, params.Config()); err != nil {
		logger.Error(fmt.Sprintf("failed to start transcription for %s: %v", params.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeEmpty(w, http.StatusOK)
}

func (h *Handler) StopTranscription(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StopTranscription")

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.meetings.StopTranscription(r.Context(), session.Meeting.MeetingID); err != nil {
		logger.Error(fmt.Sprintf("failed to stop transcription for %s: %v", session.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeEmpty(w, http.StatusOK)
}

// FetchCredentials returns the AWS credentials the service runs with. The
// body is never logged.
func (h *Handler) FetchCredentials(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("FetchCredentials")

	creds, err := h.meetings.Credentials(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch credentials: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, creds, http.StatusOK)
}

func (h *Handler) AudioFile(w http.ResponseWriter, r *http.Request) {
	h.serveAudio(w, r, audioFile)
}

func (h *Handler) StereoAudioFile(w http.ResponseWriter, r *http.Request) {
	h.serveAudio(w, r, stereoAudioFile)
}

func (h *Handler) serveAudio(w http.ResponseWriter, r *http.Request, name string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AudioFile")

	path := filepath.Join(h.assets.Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to read audio file %s: %v", path, err))
		h.writeEmpty(w, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(base64.StdEncoding.EncodeToString(data)))
}

func (h *Handler) UpdateAttendeeCapabilities(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateAttendeeCapabilities")

	params, err := bindCapabilitiesParams(r.URL.Query(), true)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to bind capabilities params: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.validator.ValidateCapabilities(params.Capabilities); err != nil {
		logger.Error(fmt.Sprintf("capabilities validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.store.Get(r.Context(), params.Title)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session %s: %v", params.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	attendee, err := h.meetings.UpdateAttendeeCapabilities(r.Context(), session.Meeting.MeetingID, params.AttendeeID, params.Capabilities)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update attendee %s: %v", params.AttendeeID, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, model.AttendeeEnvelope{Attendee: *attendee}, http.StatusOK)
}

func (h *Handler) BatchUpdateAttendeeCapabilitiesExcept(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("BatchUpdateAttendeeCapabilitiesExcept")

	params, err := bindCapabilitiesParams(r.URL.Query(), false)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to bind capabilities params: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.validator.ValidateCapabilities(params.Capabilities); err != nil {
		logger.Error(fmt.Sprintf("capabilities validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.store.Get(r.Context(), params.Title)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session %s: %v", params.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.meetings.BatchUpdateAttendeeCapabilitiesExcept(r.Context(), session.Meeting.MeetingID, params.AttendeeIDs, params.Capabilities)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to batch update attendees in %s: %v", params.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeEmpty(w, http.StatusOK)
}

func (h *Handler) GetAttendee(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetAttendee")

	attendeeID, err := requiredQuery(r.URL.Query(), "id")
	if err != nil {
		logger.Error(fmt.Sprintf("failed to bind id: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	attendee, err := h.meetings.GetAttendee(r.Context(), session.Meeting.MeetingID, attendeeID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get attendee %s: %v", attendeeID, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, model.AttendeeEnvelope{Attendee: *attendee}, http.StatusOK)
}

func (h *Handler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListAttendees")

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	attendees, err := h.meetings.ListAllAttendees(r.Context(), session.Meeting.MeetingID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list attendees of %s: %v", session.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, model.AttendeesResponse{Attendees: attendees}, http.StatusOK)
}

func (h *Handler) FindAttendee(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("FindAttendee")

	externalUserID, err := requiredQuery(r.URL.Query(), "externalUserId")
	if err != nil {
		logger.Error(fmt.Sprintf("failed to bind externalUserId: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	attendee, err := h.meetings.FindAttendeeByExternalID(r.Context(), session.Meeting.MeetingID, externalUserID)
	if errors.Is(err, model.ErrAttendeeNotFound) {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to find attendee %s: %v", externalUserID, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, model.AttendeeEnvelope{Attendee: *attendee}, http.StatusOK)
}

func (h *Handler) BatchCreateAttendees(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("BatchCreateAttendees")

	names, err := requiredQuery(r.URL.Query(), "names")
	if err != nil {
		logger.Error(fmt.Sprintf("failed to bind names: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.sessionFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get session: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	attendees, err := h.meetings.AddAttendees(r.Context(), session.Meeting.MeetingID, names)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create attendees in %s: %v", session.Title, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, model.AttendeesResponse{Attendees: attendees}, http.StatusCreated)
}

func (h *Handler) DebugSessions(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DebugSessions")

	sessions, err := h.store.List(r.Context(), 0)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list sessions: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, sessions, http.StatusOK)
}

func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("404 Not Found"))
}

// lookupMeeting returns the meeting to reuse for title: the stored one if
// the service still knows it, or the live meeting whose id is title.
func (h *Handler) lookupMeeting(ctx context.Context, title string) (*model.Session, *model.Meeting, error) {
	session, err := h.store.Get(ctx, title)
	switch {
	case err == nil:
		meeting, err := h.meetings.GetMeeting(ctx, session.Meeting.MeetingID)
		if err == nil {
			return session, meeting, nil
		}
		if !errors.Is(err, model.ErrMeetingNotFound) {
			return nil, nil, err
		}
	case !errors.Is(err, model.ErrSessionNotFound):
		return nil, nil, err
	}

	if model.IsMeetingID(title) {
		meeting, err := h.meetings.GetMeeting(ctx, title)
		if err == nil {
			return session, meeting, nil
		}
		if !errors.Is(err, model.ErrMeetingNotFound) {
			return nil, nil, err
		}
	}

	return session, nil, nil
}

func (h *Handler) resolvePrimaryMeeting(ctx context.Context, externalID string) (*model.Meeting, error) {
	session, err := h.store.Get(ctx, externalID)
	if err == nil {
		return &session.Meeting, nil
	}
	if !errors.Is(err, model.ErrSessionNotFound) {
		return nil, err
	}

	if !model.IsMeetingID(externalID) {
		return nil, errPrimaryMeetingMissing
	}

	meeting, err := h.meetings.GetMeeting(ctx, externalID)
	if errors.Is(err, model.ErrMeetingNotFound) {
		return nil, errPrimaryMeetingMissing
	}
	if err != nil {
		return nil, err
	}

	if err = h.store.Put(ctx, h.newSession(externalID, meeting, nil)); err != nil {
		return nil, err
	}

	return meeting, nil
}

func (h *Handler) createJoinMeeting(ctx context.Context, params *model.JoinParams, primary *model.Meeting, roster model.Roster) (*model.Meeting, error) {
	req := model.CreateMeetingParams{
		ExternalMeetingID: params.Title,
		MediaRegion:       params.Region,
		Features:          params.Features(),
	}
	if primary != nil {
		req.PrimaryMeetingID = primary.MeetingID
	}

	meeting, err := h.meetings.CreateMeeting(ctx, req)
	if err != nil {
		return nil, err
	}

	if primary != nil {
		meeting.PrimaryExternalMeetingID = primary.ExternalMeetingID
	}

	if err = h.store.Put(ctx, h.newSession(params.Title, meeting, roster)); err != nil {
		return nil, err
	}

	return meeting, nil
}

func (h *Handler) newSession(title string, meeting *model.Meeting, roster model.Roster) *model.Session {
	return &model.Session{
		Title:     title,
		Meeting:   *meeting,
		Attendees: roster,
		ExpiresAt: h.now().Add(h.ttl),
	}
}

// sessionFromQuery loads the session named by the title query parameter.
func (h *Handler) sessionFromQuery(r *http.Request) (*model.Session, error) {
	title, err := requiredQuery(r.URL.Query(), "title")
	if err != nil {
		return nil, err
	}

	session, err := h.store.Get(r.Context(), title)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}

	return session, nil
}

func (h *Handler) writePipelineError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrPipelineNotConfigured) {
		h.writeEmpty(w, http.StatusInternalServerError)
		return
	}
	h.writeError(w, err.Error(), http.StatusBadRequest)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	h.writeJSON(w, map[string]string{"error": message}, statusCode)
}

func (h *Handler) writeEmpty(w http.ResponseWriter, statusCode int) {
	h.writeJSON(w, struct{}{}, statusCode)
}
