package model

type TrafficDetailsRequest struct {
	Location string `json:"location" validate:"required"`
}

type DirectionProbe struct {
	Direction         string `json:"direction"`
	Distance          string `json:"distance"`
	NormalDuration    string `json:"normal_duration"`
	DurationInTraffic string `json:"duration_in_traffic"`
	Delay             string `json:"delay"`
	TrafficRatio      string `json:"traffic_ratio"`
	CongestionLevel   string `json:"congestion_level"`
}

type TrafficDetailsResponse struct {
	CenterLocation string           `json:"center_location"`
	Latitude       float64          `json:"latitude"`
	Longitude      float64          `json:"longitude"`
	Conditions     []DirectionProbe `json:"traffic_conditions"`
	OverallTraffic string           `json:"overall_traffic"`
	TrafficScore   int              `json:"traffic_score"`
}

type RouteRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

type RouteStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

type RouteResponse struct {
	Origin            string      `json:"origin"`
	Destination       string      `json:"destination"`
	Distance          string      `json:"distance"`
	Duration          string      `json:"duration"`
	DurationInTraffic string      `json:"duration_in_traffic"`
	HasTolls          bool        `json:"has_tolls"`
	TollDetails       []string    `json:"toll_details"`
	Steps             []RouteStep `json:"steps"`
	OverviewPolyline  string      `json:"overview_polyline"`
}

type NearbyPlazasRequest struct {
	Location string `json:"location" validate:"required"`
	Radius   uint   `json:"radius" validate:"lte=50000"`
}

type NearbyPlace struct {
	Name      string  `json:"name"`
	PlaceID   string  `json:"place_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Vicinity  string  `json:"vicinity,omitempty"`
	Rating    float32 `json:"rating,omitempty"`
}

type NearbyPlazasResponse struct {
	Location       string        `json:"location"`
	SearchRadiusKm float64       `json:"search_radius_km"`
	TollPlazas     []NearbyPlace `json:"toll_plazas"`
}
