package entity

// TollPlaza derived fields (current_price, busy_level, estimated_time,
// vehicles_per_hour) are written only by the traffic ingestion path.
type TollPlaza struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	Location        string    `db:"location"`
	Address         string    `db:"address"`
	BasePrice       float64   `db:"base_price"`
	CurrentPrice    float64   `db:"current_price"`
	BusyLevel       BusyLevel `db:"busy_level"`
	EstimatedTime   int       `db:"estimated_time"`
	VehiclesPerHour int       `db:"vehicles_per_hour"`
}
