package venueservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	matchdb "github.com/AhmedMHR/PadelPal/app/modules/match/infrastructure/repositories"
	venuedomain "github.com/AhmedMHR/PadelPal/app/modules/venue/domain"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/observability/metrics"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "VenueService"

// VenueService implements the Service interface.
type VenueService struct {
	repo    venuedb.Repository
	matches matchdb.Repository
	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
	db      *bun.DB
	now     func() time.Time
}

// NewVenueService creates a new VenueService.
func NewVenueService(
	repo venuedb.Repository,
	matches matchdb.Repository,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *VenueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VenueService{
		repo:    repo,
		matches: matches,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
		now:     time.Now,
	}
}

func (s *VenueService) telemetry() operations.Telemetry {
	return operations.Telemetry{
		Service: serviceName,
		Logger:  s.logger,
		Metrics: s.metrics,
		Tracer:  s.tracer,
	}
}

func (s *VenueService) readDB() bun.IDB {
	if s.db == nil {
		return nil
	}
	return s.db
}

// ListVenues returns every venue ordered by name.
func (s *VenueService) ListVenues(ctx context.Context) ([]venuedb.Venue, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "ListVenues", "all", func(ctx context.Context) (operations.Result[[]venuedb.Venue], error) {
		venues, err := s.repo.List(ctx, s.readDB())
		if err != nil {
			return operations.Result[[]venuedb.Venue]{}, fmt.Errorf("failed to list venues: %w", err)
		}
		if venues == nil {
			venues = []venuedb.Venue{}
		}
		return success(venues), nil
	}))
}

// GetVenue returns one venue.
func (s *VenueService) GetVenue(ctx context.Context, venueID string) (*venuedb.Venue, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "GetVenue", venueID, func(ctx context.Context) (operations.Result[*venuedb.Venue], error) {
		venue, fail, err := s.loadVenue(ctx, venueID)
		if err != nil {
			return operations.Result[*venuedb.Venue]{}, err
		}
		if fail != nil {
			return failure[*venuedb.Venue](fail), nil
		}
		return success(venue), nil
	}))
}

// CreateVenue adds a venue whose id is the slug of its name.
func (s *VenueService) CreateVenue(ctx context.Context, input CreateVenueInput) (*venuedb.Venue, error) {
	id := venuedomain.VenueID(input.Name)
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "CreateVenue", id, func(ctx context.Context) (operations.Result[*venuedb.Venue], error) {
		if fail := validateVenue(input, id); fail != nil {
			return failure[*venuedb.Venue](fail), nil
		}

		venue := &venuedb.Venue{
			ID:           id,
			Name:         strings.TrimSpace(input.Name),
			Location:     strings.TrimSpace(input.Location),
			PricePerHour: input.PricePerHour,
			Image:        input.Image,
			Amenities:    input.Amenities,
			Courts:       input.Courts,
			CreatedAt:    s.now().UTC(),
		}
		if len(venue.Amenities) == 0 {
			venue.Amenities = venuedomain.DefaultAmenities()
		}
		if venue.Courts == 0 {
			venue.Courts = venuedomain.DefaultCourts
		}

		if err := s.repo.Create(ctx, s.readDB(), venue); err != nil {
			if errors.Is(err, venuedb.ErrDuplicate) {
				return failure[*venuedb.Venue](results.NewError(results.KindConflict, "A venue named %q already exists", venue.Name)), nil
			}
			return operations.Result[*venuedb.Venue]{}, fmt.Errorf("failed to create venue: %w", err)
		}

		s.logger.InfoContext(ctx, "Venue created",
			attr.ExtractCorrelationID(ctx),
			attr.String("venue_id", venue.ID),
		)
		return success(venue), nil
	}))
}

// Availability returns every slot of date with a booked flag.
func (s *VenueService) Availability(ctx context.Context, venueID, date string) (*AvailabilityView, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "Availability", venueID, func(ctx context.Context) (operations.Result[*AvailabilityView], error) {
		if _, err := matchdomain.ParseDate(date); err != nil {
			return failure[*AvailabilityView](results.NewError(results.KindValidation, "Please pick a date in YYYY-MM-DD format")), nil
		}

		if _, fail, err := s.loadVenue(ctx, venueID); err != nil || fail != nil {
			if err != nil {
				return operations.Result[*AvailabilityView]{}, err
			}
			return failure[*AvailabilityView](fail), nil
		}

		booked, err := s.matches.BookedSlots(ctx, s.readDB(), venueID, date)
		if err != nil {
			return operations.Result[*AvailabilityView]{}, fmt.Errorf("failed to load booked slots: %w", err)
		}

		return success(&AvailabilityView{
			VenueID: venueID,
			Date:    date,
			Slots:   venuedomain.Availability(matchdomain.GenerateTimeSlots(), booked),
		}), nil
	}))
}

func (s *VenueService) loadVenue(ctx context.Context, venueID string) (*venuedb.Venue, *results.DomainError, error) {
	venue, err := s.repo.GetByID(ctx, s.readDB(), venueID)
	if err != nil {
		if errors.Is(err, venuedb.ErrNotFound) {
			return nil, results.NewError(results.KindNotFound, "Venue %s was not found", venueID), nil
		}
		return nil, nil, fmt.Errorf("failed to load venue: %w", err)
	}
	return venue, nil, nil
}

func validateVenue(input CreateVenueInput, id string) *results.DomainError {
	switch {
	case strings.TrimSpace(input.Name) == "" || id == "":
		return results.NewError(results.KindValidation, "Venue name is required")
	case strings.TrimSpace(input.Location) == "":
		return results.NewError(results.KindValidation, "Venue location is required")
	case input.PricePerHour <= 0:
		return results.NewError(results.KindValidation, "Price per hour must be positive")
	case input.Courts < 0:
		return results.NewError(results.KindValidation, "Courts cannot be negative")
	}
	return nil
}

func success[S any](s S) operations.Result[S] {
	return results.SuccessResult[S, *results.DomainError](s)
}

func failure[S any](f *results.DomainError) operations.Result[S] {
	return results.FailureResult[S](f)
}
