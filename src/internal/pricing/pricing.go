// Package pricing recomputes a toll plaza's congestion tier and current price
// from live traffic samples.
package pricing

import "tolleasy-service/src/internal/entity"

// Sample is one traffic telemetry reading for a plaza.
type Sample struct {
	VehicleCount    int
	AverageWaitTime int
	PriceMultiplier float64
}

// BusyLevelFor maps a vehicle count to its congestion tier. Tiers are
// exclusive: below 50 is low, 50 to 99 is medium, 100 and above is high.
func BusyLevelFor(vehicleCount int) entity.BusyLevel {
	switch {
	case vehicleCount < 50:
		return entity.BusyLevelLow
	case vehicleCount < 100:
		return entity.BusyLevelMedium
	default:
		return entity.BusyLevelHigh
	}
}

// Ingest applies a sample to the plaza's derived fields. The price multiplier
// comes from the telemetry source and is independent of the vehicle count; the
// two are not cross-validated. Later samples always win, no ordering check is
// made against earlier timestamps. VehiclesPerHour stores the most recent
// observed count, not a true hourly rate.
func Ingest(plaza *entity.TollPlaza, sample Sample) {
	plaza.BusyLevel = BusyLevelFor(sample.VehicleCount)
	plaza.CurrentPrice = plaza.BasePrice * sample.PriceMultiplier
	plaza.EstimatedTime = sample.AverageWaitTime
	plaza.VehiclesPerHour = sample.VehicleCount
}
