package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"googlemaps.github.io/maps"

	"tolleasy-service/src/internal/model"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

// Compass-point offsets probed around the geocoded center. 0.02 degrees is
// roughly 2-3 km depending on latitude.
var probeOffsets = []struct {
	direction string
	dLat      float64
	dLng      float64
}{
	{"north", 0.02, 0},
	{"northeast", 0.015, 0.015},
	{"east", 0, 0.02},
	{"southeast", -0.015, 0.015},
	{"south", -0.02, 0},
	{"southwest", -0.015, -0.015},
	{"west", 0, -0.02},
	{"northwest", 0.015, -0.015},
}

type GeoUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
}

func NewGeoUseCase(logger log.Log, validate *validator.Validate, cfg *viper.Viper) *GeoUseCase {
	return &GeoUseCase{
		Log:      logger,
		Validate: validate,
		Config:   cfg,
	}
}

func (c *GeoUseCase) mapsClient() (*maps.Client, *httpError.CommonError) {
	apiKey := c.Config.GetString("thirdparty.google.api_key")
	if apiKey == "" {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Google Maps API key not configured"
		return nil, errObj
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error creating Google Maps client: %v", err)
		return nil, errObj
	}
	return client, nil
}

func (c *GeoUseCase) geocode(ctx context.Context, client *maps.Client, location string) (*maps.GeocodingResult, *httpError.CommonError) {
	results, err := client.Geocode(ctx, &maps.GeocodingRequest{Address: location})
	if err != nil || len(results) == 0 {
		errObj := httpError.NewNotFound()
		errObj.Message = "Location not found"
		c.Log.Error("geo-usecase", errObj.Message, "geocode", location)
		return nil, errObj
	}
	return &results[0], nil
}

// TrafficDetails probes the eight compass points around the location with
// live distance-matrix queries and classifies congestion from the ratio of
// in-traffic to free-flow duration.
func (c *GeoUseCase) TrafficDetails(ctx context.Context, request *model.TrafficDetailsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("geo-usecase", errObj.Message, "TrafficDetails", utils.ConvertString(err))
		return result
	}

	client, errObj := c.mapsClient()
	if errObj != nil {
		result.Error = errObj
		c.Log.Error("geo-usecase", errObj.Message, "TrafficDetails", request.Location)
		return result
	}

	center, errObj := c.geocode(ctx, client, request.Location)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	centerLat := center.Geometry.Location.Lat
	centerLng := center.Geometry.Location.Lng
	origin := fmt.Sprintf("%f,%f", centerLat, centerLng)

	probes := make([]model.DirectionProbe, 0, len(probeOffsets))
	for _, offset := range probeOffsets {
		destination := fmt.Sprintf("%f,%f", centerLat+offset.dLat, centerLng+offset.dLng)
		matrix, err := client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
			Origins:       []string{origin},
			Destinations:  []string{destination},
			Mode:          maps.TravelModeDriving,
			DepartureTime: "now",
			TrafficModel:  maps.TrafficModelBestGuess,
		})
		if err != nil {
			c.Log.Error("geo-usecase", err.Error(), "TrafficDetails", offset.direction)
			continue
		}
		if len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
			continue
		}
		element := matrix.Rows[0].Elements[0]
		if element.Status != "OK" {
			continue
		}

		normal := element.Duration
		inTraffic := element.DurationInTraffic
		if inTraffic == 0 {
			inTraffic = normal
		}
		ratio := 1.0
		if normal > 0 {
			ratio = float64(inTraffic) / float64(normal)
		}
		delay := inTraffic - normal
		delayText := "No delay"
		if delay > 0 {
			delayText = fmt.Sprintf("%d minutes %d seconds", int(delay.Seconds())/60, int(delay.Seconds())%60)
		}

		probes = append(probes, model.DirectionProbe{
			Direction:         offset.direction,
			Distance:          element.Distance.HumanReadable,
			NormalDuration:    normal.String(),
			DurationInTraffic: inTraffic.String(),
			Delay:             delayText,
			TrafficRatio:      fmt.Sprintf("%.2fx", ratio),
			CongestionLevel:   congestionLevel(ratio),
		})
	}

	overall, score := overallTraffic(probes)
	result.Data = &model.TrafficDetailsResponse{
		CenterLocation: center.FormattedAddress,
		Latitude:       centerLat,
		Longitude:      centerLng,
		Conditions:     probes,
		OverallTraffic: overall,
		TrafficScore:   score,
	}
	return result
}

func (c *GeoUseCase) Route(ctx context.Context, request *model.RouteRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("geo-usecase", errObj.Message, "Route", utils.ConvertString(err))
		return result
	}

	client, errObj := c.mapsClient()
	if errObj != nil {
		result.Error = errObj
		c.Log.Error("geo-usecase", errObj.Message, "Route", request.Origin)
		return result
	}

	departureTime := time.Now().Unix()
	routes, _, err := client.Directions(ctx, &maps.DirectionsRequest{
		Origin:        request.Origin,
		Destination:   request.Destination,
		Mode:          maps.TravelModeDriving,
		DepartureTime: fmt.Sprintf("%d", departureTime),
		TrafficModel:  maps.TrafficModelBestGuess,
	})
	if err != nil || len(routes) == 0 {
		errObj := httpError.NewNotFound()
		errObj.Message = "Could not find directions between these locations"
		result.Error = errObj
		c.Log.Error("geo-usecase", errObj.Message, "Route",
			fmt.Sprintf("origin=%s destination=%s", request.Origin, request.Destination))
		return result
	}

	route := routes[0]
	leg := route.Legs[0]

	duration := leg.Duration
	durationInTraffic := leg.DurationInTraffic
	if durationInTraffic == 0 {
		durationInTraffic = duration
	}

	hasTolls := false
	for _, warning := range route.Warnings {
		if strings.Contains(strings.ToLower(warning), "toll") {
			hasTolls = true
		}
	}

	tollDetails := []string{}
	steps := make([]model.RouteStep, 0, len(leg.Steps))
	for _, step := range leg.Steps {
		if strings.Contains(strings.ToLower(step.HTMLInstructions), "toll") {
			hasTolls = true
			tollDetails = append(tollDetails, step.HTMLInstructions)
		}
		steps = append(steps, model.RouteStep{
			Instruction: step.HTMLInstructions,
			Distance:    step.Distance.HumanReadable,
			Duration:    step.Duration.String(),
		})
	}

	result.Data = &model.RouteResponse{
		Origin:            request.Origin,
		Destination:       request.Destination,
		Distance:          leg.Distance.HumanReadable,
		Duration:          duration.String(),
		DurationInTraffic: durationInTraffic.String(),
		HasTolls:          hasTolls,
		TollDetails:       tollDetails,
		Steps:             steps,
		OverviewPolyline:  route.OverviewPolyline.Points,
	}
	return result
}

func (c *GeoUseCase) NearbyPlazas(ctx context.Context, request *model.NearbyPlazasRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("geo-usecase", errObj.Message, "NearbyPlazas", utils.ConvertString(err))
		return result
	}

	radius := request.Radius
	if radius == 0 {
		radius = 10000
	}

	client, errObj := c.mapsClient()
	if errObj != nil {
		result.Error = errObj
		c.Log.Error("geo-usecase", errObj.Message, "NearbyPlazas", request.Location)
		return result
	}

	center, errObj := c.geocode(ctx, client, request.Location)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	places, err := client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{
			Lat: center.Geometry.Location.Lat,
			Lng: center.Geometry.Location.Lng,
		},
		Radius:  radius,
		Keyword: "toll plaza toll booth",
	})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("error searching nearby places: %v", err)
		result.Error = errObj
		c.Log.Error("geo-usecase", errObj.Message, "NearbyPlazas", request.Location)
		return result
	}

	plazas := make([]model.NearbyPlace, 0, len(places.Results))
	for _, place := range places.Results {
		plazas = append(plazas, model.NearbyPlace{
			Name:      place.Name,
			PlaceID:   place.PlaceID,
			Latitude:  place.Geometry.Location.Lat,
			Longitude: place.Geometry.Location.Lng,
			Vicinity:  place.Vicinity,
			Rating:    place.Rating,
		})
	}

	result.Data = &model.NearbyPlazasResponse{
		Location:       request.Location,
		SearchRadiusKm: float64(radius) / 1000,
		TollPlazas:     plazas,
	}
	return result
}

func congestionLevel(ratio float64) string {
	switch {
	case ratio >= 2.0:
		return "Severe congestion"
	case ratio >= 1.5:
		return "Heavy traffic"
	case ratio >= 1.2:
		return "Moderate traffic"
	default:
		return "Clear"
	}
}

// overallTraffic folds the per-direction classifications into one area-wide
// verdict on a 1-10 scale, 10 being worst.
func overallTraffic(probes []model.DirectionProbe) (string, int) {
	var severe, heavy, moderate int
	for _, probe := range probes {
		switch probe.CongestionLevel {
		case "Severe congestion":
			severe++
		case "Heavy traffic":
			heavy++
		case "Moderate traffic":
			moderate++
		}
	}

	switch {
	case severe >= 3:
		return "Severe traffic congestion in the area", 10
	case severe >= 1 || heavy >= 3:
		return "Heavy traffic in the area", 7
	case heavy >= 1 || moderate >= 3:
		return "Moderate traffic in the area", 4
	default:
		return "Generally clear traffic in the area", 1
	}
}
