package notificationhandlers

import (
	"log/slog"
	"net/http"

	authhandlers "github.com/AhmedMHR/PadelPal/app/modules/auth/infrastructure/handlers"
	notificationservice "github.com/AhmedMHR/PadelPal/app/modules/notification/application"
	"github.com/AhmedMHR/PadelPal/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// HTTPHandlers serves the inbox and challenge routes.
type HTTPHandlers interface {
	HandleListPending(w http.ResponseWriter, r *http.Request)
	HandleSendChallenge(w http.ResponseWriter, r *http.Request)
	HandleRespond(w http.ResponseWriter, r *http.Request)
	HandleMarkRead(w http.ResponseWriter, r *http.Request)
}

// NotificationHTTPHandlers implements HTTPHandlers.
type NotificationHTTPHandlers struct {
	service notificationservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewHTTPHandlers creates a new NotificationHTTPHandlers instance.
func NewHTTPHandlers(service notificationservice.Service, logger *slog.Logger, tracer trace.Tracer) HTTPHandlers {
	return &NotificationHTTPHandlers{service: service, logger: logger, tracer: tracer}
}

// Routes mounts the notification endpoints on r. Callers must be authenticated.
func Routes(r chi.Router, h HTTPHandlers) {
	r.Get("/notifications", h.HandleListPending)
	r.Post("/notifications/{notificationID}/respond", h.HandleRespond)
	r.Post("/notifications/{notificationID}/read", h.HandleMarkRead)
	r.Post("/challenges", h.HandleSendChallenge)
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

func (h *NotificationHTTPHandlers) HandleListPending(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "NotificationHandlers.HandleListPending")
	defer span.End()

	identity, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}

	out, err := h.service.ListPending(ctx, identity.UID)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Notifications loaded", out)
}

func (h *NotificationHTTPHandlers) HandleSendChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "NotificationHandlers.HandleSendChallenge")
	defer span.End()

	identity, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}

	var input notificationservice.ChallengeInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.BadRequest(w, "Please check the challenge details and try again")
		return
	}

	n, err := h.service.SendChallenge(ctx, identity, input)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, "Challenge sent", n)
}

func (h *NotificationHTTPHandlers) HandleRespond(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "NotificationHandlers.HandleRespond")
	defer span.End()

	identity, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "notificationID"))
	if err != nil {
		httpx.BadRequest(w, "Unknown notification")
		return
	}

	var req respondRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, "Please accept or decline the challenge")
		return
	}

	result, err := h.service.Respond(ctx, identity.UID, id, req.Accept)
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	message := "Challenge declined"
	if result.Accepted {
		message = "Challenge accepted, your match is booked"
	}
	httpx.OK(w, http.StatusOK, message, result)
}

func (h *NotificationHTTPHandlers) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "NotificationHandlers.HandleMarkRead")
	defer span.End()

	identity, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "notificationID"))
	if err != nil {
		httpx.BadRequest(w, "Unknown notification")
		return
	}

	n, err := h.service.MarkRead(ctx, identity.UID, id)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Notification dismissed", n)
}
