package matchhandlers

import (
	"net/http"

	"github.com/AhmedMHR/PadelPal/app/events/matchevents"
	authhandlers "github.com/AhmedMHR/PadelPal/app/modules/auth/infrastructure/handlers"
	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	"github.com/AhmedMHR/PadelPal/app/shared/httpx"
)

type messageRequest struct {
	Text string `json:"text"`
}

func (h *MatchHandlers) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleListMessages")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}
	matchID, ok := matchIDParam(w, r)
	if !ok {
		return
	}

	messages, err := h.service.ListMessages(ctx, matchID, caller.UID)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Messages loaded", messages)
}

func (h *MatchHandlers) HandlePostMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandlePostMessage")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}
	matchID, ok := matchIDParam(w, r)
	if !ok {
		return
	}

	var req messageRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, "Please type a message")
		return
	}

	msg, err := h.service.PostMessage(ctx, matchID, matchservice.Sender{
		UserID:      caller.UID,
		DisplayName: caller.DisplayName,
		Email:       caller.Email,
	}, req.Text)
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	payload := &matchevents.MessagePostedPayloadV1{
		MatchID:    msg.MatchID.String(),
		MessageID:  msg.ID.String(),
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Text:       msg.Text,
		CreatedAt:  msg.CreatedAt,
	}
	h.publish(ctx, matchevents.MatchMessagePostedV1, payload)
	httpx.OK(w, http.StatusCreated, "Message sent", msg)
}
