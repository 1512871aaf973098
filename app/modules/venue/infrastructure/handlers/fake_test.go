package venuehandlers

import (
	"context"

	venueservice "github.com/AhmedMHR/PadelPal/app/modules/venue/application"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
)

// FakeService is a programmable venueservice.Service.
type FakeService struct {
	ListVenuesFunc   func(ctx context.Context) ([]venuedb.Venue, error)
	GetVenueFunc     func(ctx context.Context, venueID string) (*venuedb.Venue, error)
	CreateVenueFunc  func(ctx context.Context, input venueservice.CreateVenueInput) (*venuedb.Venue, error)
	AvailabilityFunc func(ctx context.Context, venueID, date string) (*venueservice.AvailabilityView, error)
}

func (f *FakeService) ListVenues(ctx context.Context) ([]venuedb.Venue, error) {
	if f.ListVenuesFunc != nil {
		return f.ListVenuesFunc(ctx)
	}
	return []venuedb.Venue{}, nil
}

func (f *FakeService) GetVenue(ctx context.Context, venueID string) (*venuedb.Venue, error) {
	if f.GetVenueFunc != nil {
		return f.GetVenueFunc(ctx, venueID)
	}
	return &venuedb.Venue{ID: venueID}, nil
}

func (f *FakeService) CreateVenue(ctx context.Context, input venueservice.CreateVenueInput) (*venuedb.Venue, error) {
	if f.CreateVenueFunc != nil {
		return f.CreateVenueFunc(ctx, input)
	}
	return &venuedb.Venue{Name: input.Name}, nil
}

func (f *FakeService) Availability(ctx context.Context, venueID, date string) (*venueservice.AvailabilityView, error) {
	if f.AvailabilityFunc != nil {
		return f.AvailabilityFunc(ctx, venueID, date)
	}
	return &venueservice.AvailabilityView{VenueID: venueID, Date: date}, nil
}

var _ venueservice.Service = (*FakeService)(nil)
