// Package domain holds the pure computations behind the rainwater
// harvesting backend.
//
// # Harvesting Model
//
// The calculator uses the standard rooftop harvesting formula:
//
//	potential (liters) = catchment area (m²) × rainfall (mm) × runoff efficiency
//
// One millimetre of rain on one square metre yields one litre, so the formula
// needs no unit conversion. Efficiency captures first-flush diversion and
// evaporation losses; 0.8 is the common planning default for metal and
// concrete roofs. Volume beyond the storage tank's capacity is overflow that
// must be diverted, typically into a recharge pit.
//
// Inputs are not validated: negative or zero area, rainfall, or efficiency
// flow through the formula unchanged. The output stays mathematically
// consistent (stored + overflow == harvested) even when the inputs are
// physically meaningless.
//
// # Rooftop Detection
//
// Rooftop segmentation is mocked. Each uploaded file yields an area drawn
// uniformly from [40, 250] m², the plausible range for a residential rooftop.
// The random source is injectable so tests can pin the sequence.
//
// # Assistant
//
// The voice assistant is a fixed decision table of substring rules evaluated
// in order ("rain" before "soil" before "overflow"); the first matching rule
// wins. The ordering is part of the contract: a query mentioning both rain
// and overflow gets the rain reply.
package domain
