package models

// TotalVans is the number of vans that can be booked for a single date.
const TotalVans = 5

type Availability struct {
	Available     bool `json:"available"`
	AvailableVans int  `json:"availableVans"`
	TotalVans     int  `json:"totalVans"`
	BookedVans    int  `json:"bookedVans"`
}

func NewAvailability(booked int) Availability {
	return Availability{
		Available:     booked < TotalVans,
		AvailableVans: TotalVans - booked,
		TotalVans:     TotalVans,
		BookedVans:    booked,
	}
}
