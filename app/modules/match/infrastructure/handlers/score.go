package matchhandlers

import (
	"context"
	"net/http"

	"github.com/AhmedMHR/PadelPal/app/events/matchevents"
	authhandlers "github.com/AhmedMHR/PadelPal/app/modules/auth/infrastructure/handlers"
	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	"github.com/AhmedMHR/PadelPal/app/shared/httpx"
	"github.com/google/uuid"
)

type scoreRequest struct {
	Score   string   `json:"score"`
	Winners []string `json:"winners"`
}

type scoreFunc func(ctx context.Context, matchID uuid.UUID, userID, score string, winners []string) (*matchservice.LedgerResult, error)

func (h *MatchHandlers) HandleSubmitScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleSubmitScore")
	defer span.End()

	h.handleScore(w, r.WithContext(ctx), h.service.SubmitScore, matchevents.MatchFinishedV1, "Score saved")
}

func (h *MatchHandlers) HandleCorrectScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MatchHandlers.HandleCorrectScore")
	defer span.End()

	h.handleScore(w, r.WithContext(ctx), h.service.CorrectScore, matchevents.MatchScoreCorrectedV1, "Score corrected")
}

func (h *MatchHandlers) handleScore(w http.ResponseWriter, r *http.Request, apply scoreFunc, topic, message string) {
	ctx := r.Context()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}
	matchID, ok := matchIDParam(w, r)
	if !ok {
		return
	}

	var req scoreRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, "Please enter the score and the winners")
		return
	}

	ledger, err := apply(ctx, matchID, caller.UID, req.Score, req.Winners)
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	h.publish(ctx, topic, resultPayload(ledger))
	httpx.OK(w, http.StatusOK, message, ledger)
}

func resultPayload(ledger *matchservice.LedgerResult) *matchevents.MatchResultPayloadV1 {
	payload := &matchevents.MatchResultPayloadV1{
		MatchID: ledger.Match.ID.String(),
		Winners: ledger.Match.Winners,
		Players: ledger.Match.Players,
		Ratings: make([]matchevents.PlayerRatingV1, 0, len(ledger.Changes)),
		Skipped: ledger.Skipped,
	}
	if ledger.Match.Score != nil {
		payload.Score = *ledger.Match.Score
	}
	for _, c := range ledger.Changes {
		payload.Ratings = append(payload.Ratings, matchevents.PlayerRatingV1{
			UserID:      c.UserID,
			Winner:      c.Winner,
			LevelBefore: c.LevelBefore,
			LevelAfter:  c.LevelAfter,
		})
	}
	return payload
}
