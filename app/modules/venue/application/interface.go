package venueservice

import (
	"context"

	venuedomain "github.com/AhmedMHR/PadelPal/app/modules/venue/domain"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
)

// Service manages the venue catalogue and court availability.
type Service interface {
	ListVenues(ctx context.Context) ([]venuedb.Venue, error)
	GetVenue(ctx context.Context, venueID string) (*venuedb.Venue, error)
	CreateVenue(ctx context.Context, input CreateVenueInput) (*venuedb.Venue, error)
	Availability(ctx context.Context, venueID, date string) (*AvailabilityView, error)
}

// CreateVenueInput describes a new venue. Empty amenities and a zero court
// count fall back to the defaults.
type CreateVenueInput struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	PricePerHour float64  `json:"price_per_hour"`
	Image        string   `json:"image,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	Courts       int      `json:"courts,omitempty"`
}

// AvailabilityView lists every slot of a day at a venue.
type AvailabilityView struct {
	VenueID string             `json:"venue_id"`
	Date    string             `json:"date"`
	Slots   []venuedomain.Slot `json:"slots"`
}
