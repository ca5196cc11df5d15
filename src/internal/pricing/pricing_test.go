package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tolleasy-service/src/internal/entity"
)

func TestBusyLevelFor(t *testing.T) {
	cases := []struct {
		count    int
		expected entity.BusyLevel
	}{
		{0, entity.BusyLevelLow},
		{1, entity.BusyLevelLow},
		{49, entity.BusyLevelLow},
		{50, entity.BusyLevelMedium},
		{75, entity.BusyLevelMedium},
		{99, entity.BusyLevelMedium},
		{100, entity.BusyLevelHigh},
		{250, entity.BusyLevelHigh},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, BusyLevelFor(tc.count), "vehicle count %d", tc.count)
	}
}

func TestIngestUpdatesDerivedFields(t *testing.T) {
	plaza := &entity.TollPlaza{ID: 1, Name: "East Gate", BasePrice: 50.0, CurrentPrice: 50.0}

	Ingest(plaza, Sample{VehicleCount: 120, AverageWaitTime: 8, PriceMultiplier: 1.2})

	assert.Equal(t, entity.BusyLevelHigh, plaza.BusyLevel)
	assert.Equal(t, 60.0, plaza.CurrentPrice)
	assert.Equal(t, 8, plaza.EstimatedTime)
	assert.Equal(t, 120, plaza.VehiclesPerHour)
}

func TestIngestExactMultiplication(t *testing.T) {
	base := 33.3
	multiplier := 1.7
	plaza := &entity.TollPlaza{BasePrice: base}
	sample := Sample{VehicleCount: 10, AverageWaitTime: 2, PriceMultiplier: multiplier}

	Ingest(plaza, sample)

	// No rounding: the stored price is the exact float64 product.
	assert.Equal(t, base*multiplier, plaza.CurrentPrice)
}

func TestIngestSameSampleTwice(t *testing.T) {
	plaza := &entity.TollPlaza{BasePrice: 25.0}
	sample := Sample{VehicleCount: 55, AverageWaitTime: 4, PriceMultiplier: 1.1}

	Ingest(plaza, sample)
	first := *plaza
	Ingest(plaza, sample)

	assert.Equal(t, first, *plaza)
}

func TestIngestLaterSampleOverwrites(t *testing.T) {
	plaza := &entity.TollPlaza{BasePrice: 40.0}

	Ingest(plaza, Sample{VehicleCount: 150, AverageWaitTime: 12, PriceMultiplier: 1.5})
	Ingest(plaza, Sample{VehicleCount: 10, AverageWaitTime: 1, PriceMultiplier: 0.9})

	assert.Equal(t, entity.BusyLevelLow, plaza.BusyLevel)
	assert.Equal(t, 36.0, plaza.CurrentPrice)
	assert.Equal(t, 1, plaza.EstimatedTime)
	assert.Equal(t, 10, plaza.VehiclesPerHour)
}
