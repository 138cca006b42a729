package domain

import (
	"context"
	"encoding/json"
)

// Coordinates is a WGS-84 latitude/longitude pair, echoed back in proxy
// responses.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ForecastProvider returns the daily precipitation sums (mm) for a location
// over the upstream forecast window. Entries may be nil when the upstream
// reports no value for a day.
type ForecastProvider interface {
	DailyPrecipitation(ctx context.Context, lat, lon float64) ([]*float64, error)
}

// SoilProvider returns the raw clay-content properties at 15-30cm depth for
// a location, as delivered by the upstream soil survey.
type SoilProvider interface {
	ClayContent(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}
