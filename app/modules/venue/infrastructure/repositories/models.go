package venuedb

import (
	"time"

	"github.com/uptrace/bun"
)

// Venue is a padel club offering bookable courts. ID is a slug derived from
// the venue name.
type Venue struct {
	bun.BaseModel `bun:"table:venues,alias:v"`
	ID            string    `bun:"id,pk" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Location      string    `bun:"location,notnull" json:"location"`
	PricePerHour  float64   `bun:"price_per_hour,notnull" json:"price_per_hour"`
	Image         string    `bun:"image,notnull" json:"image"`
	Amenities     []string  `bun:"amenities,type:jsonb,notnull" json:"amenities"`
	Courts        int       `bun:"courts,notnull" json:"courts"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}
