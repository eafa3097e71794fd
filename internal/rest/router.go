package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/meeting-service/internal/infra"
	"github.com/s21platform/meeting-service/internal/pkg/metrics"
)

// NewRouter wires every route of the service. Debug routes are only mounted
// when debug is set.
func NewRouter(h *Handler, logger logger_lib.LoggerInterface, debug bool) chi.Router {
	router := chi.NewRouter()

	router.Use(infra.CORS)
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(metrics.HTTP)
	router.Use(infra.Recover)

	router.NotFound(h.NotFound)
	router.MethodNotAllowed(h.NotFound)

	router.Get("/", h.Index)
	router.Post("/meetings", h.Meetings)
	router.Post("/join", h.Join)
	router.Post("/end", h.End)
	router.Post("/startCapture", h.StartCapture)
	router.Post("/endCapture", h.EndCapture)
	router.Post("/startLiveConnector", h.StartLiveConnector)
	router.Post("/endLiveConnector", h.EndLiveConnector)
	router.Post("/deleteAttendee", h.DeleteAttendee)
	router.Post("/start_transcription", h.StartTranscription)
	router.Post("/stop_transcription", h.StopTranscription)
	router.Get("/fetch_credentials", h.FetchCredentials)
	router.Get("/audio_file", h.AudioFile)
	router.Get("/stereo_audio_file", h.StereoAudioFile)
	router.Post("/update_attendee_capabilities", h.UpdateAttendeeCapabilities)
	router.Post("/batch_update_attendee_capabilities_except", h.BatchUpdateAttendeeCapabilitiesExcept)
	router.Get("/get_attendee", h.GetAttendee)
	router.Get("/list_attendees", h.ListAttendees)
	router.Get("/find_attendee", h.FindAttendee)
	router.Post("/batch_create_attendees", h.BatchCreateAttendees)

	router.Handle("/metrics", metrics.Handler())

	if debug {
		router.Get("/debug/sessions", h.DebugSessions)
		router.Mount("/debug", middleware.Profiler())
	}

	return router
}
