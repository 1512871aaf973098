package venuehandlers

import (
	"log/slog"
	"net/http"

	venueservice "github.com/AhmedMHR/PadelPal/app/modules/venue/application"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Handlers serves the venue routes.
type Handlers interface {
	HandleListVenues(w http.ResponseWriter, r *http.Request)
	HandleGetVenue(w http.ResponseWriter, r *http.Request)
	HandleCreateVenue(w http.ResponseWriter, r *http.Request)
	HandleAvailability(w http.ResponseWriter, r *http.Request)
}

// VenueHandlers implements the Handlers interface.
type VenueHandlers struct {
	service venueservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewVenueHandlers creates a new VenueHandlers instance.
func NewVenueHandlers(service venueservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &VenueHandlers{service: service, logger: logger, tracer: tracer}
}

// Routes mounts the venue endpoints on r.
func Routes(r chi.Router, h Handlers) {
	r.Route("/venues", func(r chi.Router) {
		r.Get("/", h.HandleListVenues)
		r.Post("/", h.HandleCreateVenue)
		r.Get("/{venueID}", h.HandleGetVenue)
		r.Get("/{venueID}/slots", h.HandleAvailability)
	})
}

func (h *VenueHandlers) HandleListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleListVenues")
	defer span.End()

	venues, err := h.service.ListVenues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list venues", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Venues loaded", venues)
}

func (h *VenueHandlers) HandleGetVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleGetVenue")
	defer span.End()

	venue, err := h.service.GetVenue(ctx, chi.URLParam(r, "venueID"))
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Venue loaded", venue)
}

func (h *VenueHandlers) HandleCreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleCreateVenue")
	defer span.End()

	var input venueservice.CreateVenueInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.BadRequest(w, "Please check the venue details and try again")
		return
	}

	venue, err := h.service.CreateVenue(ctx, input)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, "Venue created", venue)
}

func (h *VenueHandlers) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleAvailability")
	defer span.End()

	date := r.URL.Query().Get("date")
	if date == "" {
		httpx.BadRequest(w, "Please pick a date")
		return
	}

	view, err := h.service.Availability(ctx, chi.URLParam(r, "venueID"), date)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Slots loaded", view)
}
