package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHarvest_DefaultsOverflow(t *testing.T) {
	// area=100, rainfall=1000 with the default efficiency and tank capacity.
	result := CalculateHarvest(HarvestInput{
		AreaSqm:            100,
		RainfallMm:         1000,
		Efficiency:         DefaultEfficiency,
		TankCapacityLiters: DefaultTankCapacityLiters,
	})

	assert.Equal(t, 80000.0, result.HarvestedLiters)
	assert.Equal(t, 10000.0, result.StoredLiters)
	assert.Equal(t, 70000.0, result.OverflowLiters)
	assert.Equal(t, 0.8, result.Efficiency)
	assert.Equal(t, 10000.0, result.TankCapacityLiters)
	assert.Equal(t, MessageOverflow, result.Message)
}

func TestCalculateHarvest_SafeStorage(t *testing.T) {
	result := CalculateHarvest(HarvestInput{
		AreaSqm:            10,
		RainfallMm:         100,
		Efficiency:         0.8,
		TankCapacityLiters: DefaultTankCapacityLiters,
	})

	assert.Equal(t, 800.0, result.HarvestedLiters)
	assert.Equal(t, 800.0, result.StoredLiters)
	assert.Equal(t, 0.0, result.OverflowLiters)
	assert.Equal(t, MessageSafeStorage, result.Message)
}

func TestCalculateHarvest_ExactlyFullTankIsSafe(t *testing.T) {
	// harvested == capacity: strict inequality means no overflow message.
	result := CalculateHarvest(HarvestInput{
		AreaSqm:            100,
		RainfallMm:         125,
		Efficiency:         0.8,
		TankCapacityLiters: 10000,
	})

	assert.Equal(t, 10000.0, result.HarvestedLiters)
	assert.Equal(t, 10000.0, result.StoredLiters)
	assert.Equal(t, 0.0, result.OverflowLiters)
	assert.Equal(t, MessageSafeStorage, result.Message)
}

func TestCalculateHarvest_VolumeConservation(t *testing.T) {
	inputs := []HarvestInput{
		{AreaSqm: 100, RainfallMm: 1000, Efficiency: 0.8, TankCapacityLiters: 10000},
		{AreaSqm: 55.5, RainfallMm: 812.3, Efficiency: 0.65, TankCapacityLiters: 20000},
		{AreaSqm: 240.75, RainfallMm: 33.33, Efficiency: 0.9, TankCapacityLiters: 500},
		{AreaSqm: 1, RainfallMm: 1, Efficiency: 1, TankCapacityLiters: 10000},
	}

	for _, in := range inputs {
		result := CalculateHarvest(in)

		assert.InDelta(t, result.HarvestedLiters, result.StoredLiters+result.OverflowLiters, 0.01)
		assert.GreaterOrEqual(t, result.OverflowLiters, 0.0)
		if result.OverflowLiters > 0 {
			assert.Equal(t, MessageOverflow, result.Message)
		} else {
			assert.Equal(t, MessageSafeStorage, result.Message)
		}
	}
}

func TestCalculateHarvest_RoundsToTwoDecimals(t *testing.T) {
	result := CalculateHarvest(HarvestInput{
		AreaSqm:            33.333,
		RainfallMm:         77.77,
		Efficiency:         0.8,
		TankCapacityLiters: 1000,
	})

	// 33.333 * 77.77 * 0.8 = 2073.845928
	assert.Equal(t, 2073.85, result.HarvestedLiters)
	assert.Equal(t, 1000.0, result.StoredLiters)
	assert.Equal(t, 1073.85, result.OverflowLiters)
}

func TestCalculateHarvest_NegativeInputsPassThrough(t *testing.T) {
	// No validation: a negative area yields a negative potential, all of it
	// "stored", none of it overflow.
	result := CalculateHarvest(HarvestInput{
		AreaSqm:            -100,
		RainfallMm:         1000,
		Efficiency:         0.8,
		TankCapacityLiters: 10000,
	})

	assert.Equal(t, -80000.0, result.HarvestedLiters)
	assert.Equal(t, -80000.0, result.StoredLiters)
	assert.Equal(t, 0.0, result.OverflowLiters)
	assert.Equal(t, MessageSafeStorage, result.Message)
	assert.Equal(t, -100.0, result.AreaSqm)
}

func TestCalculateHarvest_ZeroInputs(t *testing.T) {
	result := CalculateHarvest(HarvestInput{TankCapacityLiters: DefaultTankCapacityLiters})

	assert.Equal(t, 0.0, result.HarvestedLiters)
	assert.Equal(t, 0.0, result.StoredLiters)
	assert.Equal(t, 0.0, result.OverflowLiters)
	assert.Equal(t, MessageSafeStorage, result.Message)
}
