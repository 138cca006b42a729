package domain

import "math"

// Defaults applied when the optional calculator inputs are absent.
const (
	DefaultEfficiency         = 0.8
	DefaultTankCapacityLiters = 10000.0
)

// Messages reported by the calculator. The overflow message is chosen on
// strict inequality: an exactly-full tank is still safe.
const (
	MessageOverflow    = "Overflow detected!"
	MessageSafeStorage = "Safe storage"
)

// HarvestInput carries the calculator inputs. Callers are expected to fill
// Efficiency and TankCapacityLiters with the defaults when the client omitted
// them; the calculator itself applies no defaulting and no validation.
type HarvestInput struct {
	AreaSqm            float64
	RainfallMm         float64
	Efficiency         float64
	TankCapacityLiters float64
}

// HarvestResult is the calculator output, shaped for direct JSON encoding.
type HarvestResult struct {
	AreaSqm            float64 `json:"area_sqm"`
	RainfallMm         float64 `json:"rainfall_mm"`
	Efficiency         float64 `json:"efficiency"`
	HarvestedLiters    float64 `json:"harvested_liters"`
	TankCapacityLiters float64 `json:"tank_capacity_liters"`
	StoredLiters       float64 `json:"stored_liters"`
	OverflowLiters     float64 `json:"overflow_liters"`
	Message            string  `json:"message"`
}

// CalculateHarvest computes the harvesting potential for a rooftop and splits
// it into stored and overflow volume against the tank capacity.
//
// Inputs are echoed unmodified; the three computed volumes are rounded to two
// decimal places, so stored + overflow can differ from harvested by at most
// one cent of a liter.
func CalculateHarvest(in HarvestInput) HarvestResult {
	potential := in.AreaSqm * in.RainfallMm * in.Efficiency

	overflow := math.Max(0, potential-in.TankCapacityLiters)
	stored := math.Min(potential, in.TankCapacityLiters)

	message := MessageSafeStorage
	if overflow > 0 {
		message = MessageOverflow
	}

	return HarvestResult{
		AreaSqm:            in.AreaSqm,
		RainfallMm:         in.RainfallMm,
		Efficiency:         in.Efficiency,
		HarvestedLiters:    round2(potential),
		TankCapacityLiters: in.TankCapacityLiters,
		StoredLiters:       round2(stored),
		OverflowLiters:     round2(overflow),
		Message:            message,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
