package domain

// Adoption is one map marker for a household or institution that adopted
// rooftop harvesting.
type Adoption struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	User string  `json:"user"`
}

var adoptions = []Adoption{
	{Lat: 19.0760, Lon: 72.8777, User: "Mumbai Home"},
	{Lat: 28.6139, Lon: 77.2090, User: "Delhi School"},
	{Lat: 13.0827, Lon: 80.2707, User: "Chennai NGO"},
}

// Adoptions returns the demo adoption markers. The caller must not mutate
// the returned slice.
func Adoptions() []Adoption {
	return adoptions
}
