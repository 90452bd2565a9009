package domain

// Stringer is a racket-stringing provider listed on the marketplace.
type Stringer struct {
	ID                int64
	Name              string
	RatePerRacket     float64
	Availability      string
	CapacityToday     int
	RatingQuality     float64
	RatingPunctuality float64
	Location          string
}
