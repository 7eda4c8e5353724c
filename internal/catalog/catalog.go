// Package catalog holds the fixed set of trips that can be booked.
package catalog

import "tripBooker/internal/models"

type Catalog struct {
	trips []models.Trip
	byID  map[int]int
}

func New(trips []models.Trip) *Catalog {
	c := &Catalog{
		trips: make([]models.Trip, len(trips)),
		byID:  make(map[int]int, len(trips)),
	}

	copy(c.trips, trips)
	for i, t := range c.trips {
		c.byID[t.ID] = i
	}

	return c
}

// Default returns the catalog seeded with the standard trips.
func Default() *Catalog {
	return New(seed)
}

// GetAllTrips returns the trips in seed order.
func (c *Catalog) GetAllTrips() []models.Trip {
	out := make([]models.Trip, len(c.trips))
	copy(out, c.trips)

	return out
}

func (c *Catalog) Trip(id int) (models.Trip, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Trip{}, false
	}

	return c.trips[i], true
}
