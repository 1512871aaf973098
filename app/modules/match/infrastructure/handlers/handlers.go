package matchhandlers

import (
	"log/slog"
	"net/http"

	matchservice "github.com/AhmedMHR/PadelPal/app/modules/match/application"
	"github.com/AhmedMHR/PadelPal/app/shared/utils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Handlers serves the match routes.
type Handlers interface {
	HandleListOpen(w http.ResponseWriter, r *http.Request)
	HandleListMine(w http.ResponseWriter, r *http.Request)
	HandleCreateMatch(w http.ResponseWriter, r *http.Request)
	HandleGetMatch(w http.ResponseWriter, r *http.Request)
	HandleJoinMatch(w http.ResponseWriter, r *http.Request)
	HandleLeaveMatch(w http.ResponseWriter, r *http.Request)
	HandleCancelMatch(w http.ResponseWriter, r *http.Request)
	HandleSubmitScore(w http.ResponseWriter, r *http.Request)
	HandleCorrectScore(w http.ResponseWriter, r *http.Request)
	HandleListMessages(w http.ResponseWriter, r *http.Request)
	HandlePostMessage(w http.ResponseWriter, r *http.Request)
}

// MatchHandlers implements the Handlers interface. Lifecycle events are
// published after the service call has committed.
type MatchHandlers struct {
	service   matchservice.Service
	publisher message.Publisher
	helper    utils.Helpers
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewMatchHandlers creates a new MatchHandlers instance.
func NewMatchHandlers(
	service matchservice.Service,
	publisher message.Publisher,
	helper utils.Helpers,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &MatchHandlers{
		service:   service,
		publisher: publisher,
		helper:    helper,
		logger:    logger,
		tracer:    tracer,
	}
}

// Routes mounts the match endpoints on r. Callers must be authenticated.
func Routes(r chi.Router, h Handlers) {
	r.Route("/matches", func(r chi.Router) {
		r.Post("/", h.HandleCreateMatch)
		r.Get("/open", h.HandleListOpen)
		r.Get("/mine", h.HandleListMine)
		r.Get("/{matchID}", h.HandleGetMatch)
		r.Delete("/{matchID}", h.HandleCancelMatch)
		r.Post("/{matchID}/join", h.HandleJoinMatch)
		r.Post("/{matchID}/leave", h.HandleLeaveMatch)
		r.Post("/{matchID}/score", h.HandleSubmitScore)
		r.Put("/{matchID}/score", h.HandleCorrectScore)
		r.Get("/{matchID}/messages", h.HandleListMessages)
		r.Post("/{matchID}/messages", h.HandlePostMessage)
	})
}
