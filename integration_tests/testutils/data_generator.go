package testutils

import (
	"context"
	"fmt"
	"time"

	matchdomain "github.com/AhmedMHR/PadelPal/app/modules/match/domain"
	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	venuedomain "github.com/AhmedMHR/PadelPal/app/modules/venue/domain"
	venuedb "github.com/AhmedMHR/PadelPal/app/modules/venue/infrastructure/repositories"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/uptrace/bun"
)

// TestDataGenerator creates realistic players and venues.
type TestDataGenerator struct {
	faker *gofakeit.Faker
}

// NewTestDataGenerator creates a generator; a seed makes the data repeatable.
func NewTestDataGenerator(seed ...uint64) *TestDataGenerator {
	s := uint64(time.Now().UnixNano())
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{faker: gofakeit.New(s)}
}

// GenerateUsers returns n profiles at the given level with the starting wallet.
func (g *TestDataGenerator) GenerateUsers(n int, level float64) []userdb.User {
	users := make([]userdb.User, 0, n)
	for i := 0; i < n; i++ {
		email := g.faker.Email()
		name := g.faker.Name()
		users = append(users, userdb.User{
			UID:         fmt.Sprintf("uid-%d-%s", i, g.faker.LetterN(8)),
			Email:       &email,
			DisplayName: &name,
			Level:       level,
			Balance:     2000,
		})
	}
	return users
}

// GenerateVenue returns a venue whose id is derived from its name.
func (g *TestDataGenerator) GenerateVenue() venuedb.Venue {
	name := g.faker.Company() + " Padel"
	return venuedb.Venue{
		ID:           venuedomain.VenueID(name),
		Name:         name,
		Location:     g.faker.City(),
		PricePerHour: 400,
		Image:        g.faker.URL(),
		Amenities:    venuedomain.DefaultAmenities(),
		Courts:       venuedomain.DefaultCourts,
	}
}

// InsertUsers stores users directly.
func InsertUsers(ctx context.Context, db bun.IDB, users []userdb.User) error {
	if len(users) == 0 {
		return nil
	}
	_, err := db.NewInsert().Model(&users).Exec(ctx)
	return err
}

// InsertVenue stores a venue directly.
func InsertVenue(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error {
	_, err := db.NewInsert().Model(venue).Exec(ctx)
	return err
}

// FutureDate returns a bookable date days from now.
func FutureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(matchdomain.DateLayout)
}
