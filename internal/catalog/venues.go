package catalog

import (
	"errors"

	"eventPortal/internal/models"
)

var ErrVenueNotFound = errors.New("venue not found")

// VenueCatalog is the static lookup table of meeting spaces. It is loaded
// once and never mutated.
type VenueCatalog struct {
	venues []models.Venue
}

func NewVenueCatalog() *VenueCatalog {
	return &VenueCatalog{venues: venues}
}

func (c *VenueCatalog) List() []models.Venue {
	out := make([]models.Venue, len(c.venues))
	copy(out, c.venues)

	return out
}

func (c *VenueCatalog) Get(id int) (models.Venue, error) {
	for _, v := range c.venues {
		if v.ID == id {
			return v, nil
		}
	}

	return models.Venue{}, ErrVenueNotFound
}

var venues = []models.Venue{
	{
		ID:          1,
		Name:        "Main Conference Room",
		Module:      "Module 1, Level 2",
		Capacity:    25,
		AVFacility:  "Dual projector, VC bridge",
		Limitations: "NIL",
		Suitability: "Leadership reviews, board meetings",
		Comment:     "Book through facilities at least a week ahead",
	},
	{
		ID:          2,
		Name:        "Auditorium A",
		Module:      "Module 2, Ground Floor",
		Capacity:    180,
		AVFacility:  "Stage AV, wireless mics, recording booth",
		Limitations: "No catering inside the hall",
		Suitability: "Town halls, summits",
		Comment:     "AV crew mandatory for events above 100 heads",
	},
	{
		ID:          3,
		Name:        "Training Center",
		Module:      "Module 3, Level 1",
		Capacity:    60,
		AVFacility:  "Projector, whiteboards",
		Limitations: "Fixed classroom seating",
		Suitability: "Workshops, training sessions",
		Comment:     "Can be split into two rooms on request",
	},
	{
		ID:          4,
		Name:        "Innovation Lab",
		Module:      "Module 2, Level 4",
		Capacity:    40,
		AVFacility:  "Interactive displays, streaming setup",
		Limitations: "Prototype area off limits",
		Suitability: "Brainstorms, product demos",
		Comment:     "External guests need an escort",
	},
	{
		ID:          5,
		Name:        "Cafeteria Commons",
		Module:      "Module 1, Ground Floor",
		Capacity:    250,
		AVFacility:  "Portable PA only",
		Limitations: "Available after 3 PM on weekdays",
		Suitability: "Celebrations, fairs",
		Comment:     "Shared space, expect walk-through traffic",
	},
}
