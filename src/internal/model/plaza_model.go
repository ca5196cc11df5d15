package model

type CreatePlazaRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Location  string  `json:"location" validate:"required,max=255"`
	Address   string  `json:"address" validate:"required,max=512"`
	BasePrice float64 `json:"base_price" validate:"required,gt=0"`
}

type UpdatePlazaRequest struct {
	ID        int64    `json:"-" validate:"required"`
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Location  *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	Address   *string  `json:"address,omitempty" validate:"omitempty,max=512"`
	BasePrice *float64 `json:"base_price,omitempty" validate:"omitempty,gt=0"`
}

type ListPlazaRequest struct {
	Skip  int `json:"skip" validate:"gte=0"`
	Limit int `json:"limit" validate:"gt=0,lte=100"`
}

type PlazaResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Location        string  `json:"location"`
	Address         string  `json:"address"`
	BasePrice       float64 `json:"base_price"`
	CurrentPrice    float64 `json:"current_price"`
	BusyLevel       string  `json:"busy_level"`
	EstimatedTime   int     `json:"estimated_time"`
	VehiclesPerHour int     `json:"vehicles_per_hour"`
}

// PlazaStatusResponse is the live congestion snapshot served from cache when
// one is available.
type PlazaStatusResponse struct {
	TollPlazaID     int64   `json:"toll_plaza_id"`
	Name            string  `json:"name"`
	CurrentPrice    float64 `json:"current_price"`
	BusyLevel       string  `json:"busy_level"`
	EstimatedTime   string  `json:"estimated_time"`
	VehiclesPerHour int     `json:"vehicles_per_hour"`
}
