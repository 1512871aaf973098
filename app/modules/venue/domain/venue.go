// Package venuedomain holds venue defaults and slot availability rules.
package venuedomain

import (
	"slices"
	"strings"

	"github.com/gosimple/slug"
)

// DefaultCourts is used when a new venue does not state its court count.
const DefaultCourts = 4

// DefaultAmenities returns the amenity list given to venues created without one.
func DefaultAmenities() []string {
	return []string{"WiFi", "Parking", "Showers"}
}

// VenueID derives the slug id for a venue name.
func VenueID(name string) string {
	return slug.Make(strings.TrimSpace(name))
}

// Slot is one bookable start time and whether a match already holds it.
type Slot struct {
	StartTime string `json:"start_time"`
	Booked    bool   `json:"booked"`
}

// Availability marks every slot in slots that appears in booked.
func Availability(slots, booked []string) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{StartTime: s, Booked: slices.Contains(booked, s)})
	}
	return out
}
