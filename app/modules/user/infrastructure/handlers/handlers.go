package userhandlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/AhmedMHR/PadelPal/app/events/userevents"
	authhandlers "github.com/AhmedMHR/PadelPal/app/modules/auth/infrastructure/handlers"
	userservice "github.com/AhmedMHR/PadelPal/app/modules/user/application"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/httpx"
	"github.com/AhmedMHR/PadelPal/app/shared/utils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Handlers serves the profile, wallet and leaderboard routes.
type Handlers interface {
	HandleGetMe(w http.ResponseWriter, r *http.Request)
	HandleUpdateMe(w http.ResponseWriter, r *http.Request)
	HandleTopUp(w http.ResponseWriter, r *http.Request)
	HandleLeaderboard(w http.ResponseWriter, r *http.Request)
}

// UserHandlers implements the Handlers interface.
type UserHandlers struct {
	service   userservice.Service
	publisher message.Publisher
	helper    utils.Helpers
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(
	service userservice.Service,
	publisher message.Publisher,
	helper utils.Helpers,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &UserHandlers{
		service:   service,
		publisher: publisher,
		helper:    helper,
		logger:    logger,
		tracer:    tracer,
	}
}

// Routes mounts the user endpoints on r. Callers must be authenticated.
func Routes(r chi.Router, h Handlers) {
	r.Get("/me", h.HandleGetMe)
	r.Patch("/me", h.HandleUpdateMe)
	r.Post("/wallet/topup", h.HandleTopUp)
	r.Get("/leaderboard", h.HandleLeaderboard)
}

type topUpRequest struct {
	Amount int64 `json:"amount"`
}

// HandleGetMe returns the caller's profile, creating it on first sign in.
func (h *UserHandlers) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleGetMe")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}

	view, err := h.service.GetOrCreateProfile(ctx, caller)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to load profile",
			attr.ExtractCorrelationID(ctx),
			attr.String("user_id", caller.UID),
			attr.Error(err),
		)
		httpx.Fail(w, err)
		return
	}

	status, message := http.StatusOK, "Profile loaded"
	if view.Created {
		status, message = http.StatusCreated, "Welcome to PadelPal"
	}
	httpx.OK(w, status, message, view)
}

func (h *UserHandlers) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleUpdateMe")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}

	var input userservice.UpdateProfileInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.BadRequest(w, "Please check your profile details and try again")
		return
	}

	view, err := h.service.UpdateProfile(ctx, caller.UID, input)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Profile updated", view)
}

// HandleTopUp credits the caller's wallet and announces the new balance.
func (h *UserHandlers) HandleTopUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleTopUp")
	defer span.End()

	caller, ok := authhandlers.CallerIdentity(w, r)
	if !ok {
		return
	}

	var req topUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, "Please enter an amount")
		return
	}

	result, err := h.service.TopUp(ctx, caller.UID, req.Amount)
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	h.publishTopUp(ctx, result)
	httpx.OK(w, http.StatusOK, "Wallet topped up", result)
}

func (h *UserHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleLeaderboard")
	defer span.End()

	entries, err := h.service.Leaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to load leaderboard", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, "Leaderboard loaded", entries)
}

// publishTopUp is best effort; the balance is already committed.
func (h *UserHandlers) publishTopUp(ctx context.Context, result *userservice.TopUpResult) {
	msg, err := h.helper.CreateNewMessage(ctx, &userevents.WalletToppedUpPayloadV1{
		UserID:  result.UserID,
		Amount:  result.Amount,
		Balance: result.Balance,
	}, userevents.WalletToppedUpV1)
	if err == nil {
		err = h.publisher.Publish(userevents.WalletToppedUpV1, msg)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish wallet event",
			attr.ExtractCorrelationID(ctx),
			attr.String("user_id", result.UserID),
			attr.Error(err),
		)
	}
}
