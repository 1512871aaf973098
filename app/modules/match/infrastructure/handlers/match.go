package matchhandlers

import (
	"net/http"

	"github.com/AhmedMHR/PadelPal/app/events/matchevents"
	authhandlers "github.com/AhmedMHR/PadelPal/app/modules/auth/infrastructure/handlers"
	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *MatchHandlers) HandleListOpen(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleListOpen")
	defer span.End()

	matches, err := h.service.ListOpenMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list open matches", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Open matches loaded", matches)
}

func (h *MatchHandlers) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleListMine")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}

	matches, err := h.service.ListUserMatches(ctx, caller.UID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list user matches", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Your matches loaded", matches)
}

func (h *MatchHandlers) HandleCreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleCreateMatch")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}

	var input matchservice.CreateMatchInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.BadRequest(w, "Please check the booking details and try again")
		return
	}

	match, err := h.service.CreateMatch(ctx, caller.UID, input)
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	h.publish(ctx, matchevents.MatchCreatedV1, &matchevents.MatchCreatedPayloadV1{
		MatchID:   match.ID.String(),
		HostID:    match.HostID,
		VenueID:   match.VenueID,
		Date:      match.Date,
		StartTime: match.StartTime,
		Type:      string(match.Type),
		Level:     match.Level,
		CreatedAt: match.CreatedAt,
	})
	httpx.OK(w, http.StatusCreated, "Match booked", match)
}

func (h *MatchHandlers) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleGetMatch")
	defer span.End()

	matchID, ok := matchIDParam(w, r)
	if !ok {
		return
	}

	match, err := h.service.GetMatch(ctx, matchID)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Match loaded", match)
}

func (h *MatchHandlers) HandleJoinMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleJoinMatch")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}
	matchID, ok := matchIDParam(w, r)
	if !ok {
		return
	}

	match, err := h.service.JoinMatch(ctx, matchID, caller.UID)
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	h.publish(ctx, matchevents.MatchJoinedV1, &matchevents.RosterChangedPayloadV1{
		MatchID: match.ID.String(),
		UserID:  caller.UID,
		Players: match.Players,
		Status:  string(match.Status),
	})
	if match.Status == matchdomain.StatusFull {
		h.publish(ctx, matchevents.MatchFullV1, &matchevents.MatchFullPayloadV1{
			MatchID:   match.ID.String(),
			VenueID:   match.VenueID,
			Date:      match.Date,
			StartTime: match.StartTime,
			Players:   match.Players,
		})
	}
	httpx.OK(w, http.StatusOK, "You joined the match", match)
}

func (h *MatchHandlers) HandleLeaveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleLeaveMatch")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}
	matchID, ok := matchIDParam(w, r)
	if !ok {
		return
	}

	match, err := h.service.LeaveMatch(ctx, matchID, caller.UID)
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	h.publish(ctx, matchevents.MatchLeftV1, &matchevents.RosterChangedPayloadV1{
		MatchID: match.ID.String(),
		UserID:  caller.UID,
		Players: match.Players,
		Status:  string(match.Status),
	})
	httpx.OK(w, http.StatusOK, "You left the match", match)
}

func (h *MatchHandlers) HandleCancelMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleCancelMatch")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}
	matchID, ok := matchIDParam(w, r)
	if !ok {
		return
	}

	match, err := h.service.CancelMatch(ctx, matchID, caller.UID)
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	h.publish(ctx, matchevents.MatchCancelledV1, &matchevents.MatchCancelledPayloadV1{
		MatchID:   match.ID.String(),
		HostID:    match.HostID,
		VenueID:   match.VenueID,
		Date:      match.Date,
		StartTime: match.StartTime,
		Players:   match.Players,
	})
	httpx.OK(w, http.StatusOK, "Match cancelled", nil)
}

func matchIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		httpx.WriteJSON(w, http.StatusNotFound, httpx.Response{Success: false, Message: "Match not found"})
		return uuid.Nil, false
	}
	return id, true
}
