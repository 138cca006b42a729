package domain

import "math/rand"

// Detected rooftop areas are drawn uniformly from this range, in square
// metres.
const (
	MinRooftopAreaSqm = 40.0
	MaxRooftopAreaSqm = 250.0
)

const rooftopMessage = "AI detected rooftop successfully (mock)"

// AreaEstimate is the per-file result of the mocked rooftop detection.
type AreaEstimate struct {
	Filename        string  `json:"filename"`
	DetectedAreaSqm float64 `json:"detected_area_sqm"`
	Message         string  `json:"message"`
}

// FloatSource yields uniform floats in [0, 1). *rand.Rand satisfies it;
// tests substitute a fixed sequence.
type FloatSource interface {
	Float64() float64
}

// Estimator produces mock rooftop area estimates.
type Estimator struct {
	rand FloatSource
}

// NewEstimator returns an Estimator backed by the shared math/rand/v2 source.
// Estimates are intentionally non-reproducible across calls.
func NewEstimator() *Estimator {
	return NewEstimatorWithSource(globalSource{})
}

// NewEstimatorWithSource returns an Estimator drawing from src.
func NewEstimatorWithSource(src FloatSource) *Estimator {
	return &Estimator{rand: src}
}

// EstimateAreas returns one estimate per filename, in input order. An empty
// input yields an empty (non-nil) slice, never an error.
func (e *Estimator) EstimateAreas(filenames []string) []AreaEstimate {
	estimates := make([]AreaEstimate, 0, len(filenames))
	for _, name := range filenames {
		area := MinRooftopAreaSqm + e.rand.Float64()*(MaxRooftopAreaSqm-MinRooftopAreaSqm)
		estimates = append(estimates, AreaEstimate{
			Filename:        name,
			DetectedAreaSqm: round2(area),
			Message:         rooftopMessage,
		})
	}
	return estimates
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
