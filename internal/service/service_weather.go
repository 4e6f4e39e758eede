package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelarde/climatask/internal/config"
	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/weather"
	"github.com/avelarde/climatask/models"
)

// weatherService is the concrete implementation of [WeatherService]. It
// guards the upstream with the configured shared secret and reshapes the
// columnar forecast payload into the service's response document.
type weatherService struct {
	client weather.Client
	apiKey string
	logger *logger.Logger
}

// NewWeatherService constructs a [WeatherService] over the given forecast
// client.
func NewWeatherService(client weather.Client, cfg config.Weather, logger *logger.Logger) WeatherService {
	return &weatherService{
		client: client,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Report fetches and reshapes the forecast for the given coordinates.
//
// The apiKey check happens first; on mismatch ErrInvalidAPIKey is returned
// and no upstream call is made. An upstream payload without a current block
// yields ErrNoForecastData. Upstream timestamps follow the forecast API's
// "local apparent time" convention, so the UTC offset is added before the
// unix seconds are converted to absolute instants.
func (s *weatherService) Report(ctx context.Context, latitude, longitude, apiKey string) (models.WeatherReport, error) {
	log := logger.FromContext(ctx)

	if apiKey != s.apiKey {
		log.Error().Msg("invalid API key for climate request")
		return models.WeatherReport{}, ErrInvalidAPIKey
	}

	forecast, err := s.client.Forecast(ctx, latitude, longitude)
	if err != nil {
		log.Err(err).Msg("forecast fetch failed")
		return models.WeatherReport{}, fmt.Errorf("fetching forecast: %w", err)
	}

	if forecast == nil || forecast.Current == nil || forecast.Hourly == nil {
		return models.WeatherReport{}, ErrNoForecastData
	}

	offset := forecast.UTCOffsetSeconds
	current := forecast.Current

	report := models.WeatherReport{
		Current: models.CurrentWeather{
			Latitude:         forecast.Latitude,
			Longitude:        forecast.Longitude,
			Elevation:        forecast.Elevation,
			UTCOffsetSeconds: offset,
			Time:             time.Unix(current.Time+offset, 0).UTC(),

			Temperature2m:       current.Temperature2m,
			RelativeHumidity2m:  current.RelativeHumidity2m,
			ApparentTemperature: current.ApparentTemperature,
			IsDay:               current.IsDay,
			Precipitation:       current.Precipitation,
			Rain:                current.Rain,
			Showers:             current.Showers,
			Snowfall:            current.Snowfall,
			WeatherCode:         current.WeatherCode,
			CloudCover:          current.CloudCover,
			PressureMSL:         current.PressureMSL,
			SurfacePressure:     current.SurfacePressure,
			WindSpeed10m:        current.WindSpeed10m,
			WindDirection10m:    current.WindDirection10m,
			WindGusts10m:        current.WindGusts10m,
		},
		Hourly: reshapeHourly(forecast.Hourly, offset),
	}

	return report, nil
}

// hourlyInterval is the spacing of the hourly series in seconds, used when
// the payload is too short to derive it.
const hourlyInterval int64 = 3600

// reshapeHourly zips the hourly temperature series with its timestamps. The
// series length is (end − start) / interval; timestamp i equals
// start + i*interval + offset as an absolute instant.
func reshapeHourly(hourly *weather.HourlyBlock, offset int64) models.HourlyWeather {
	if len(hourly.Time) == 0 {
		return models.HourlyWeather{
			Time:          []time.Time{},
			Temperature2m: []float64{},
		}
	}

	start := hourly.Time[0]
	interval := hourlyInterval
	if len(hourly.Time) > 1 {
		interval = hourly.Time[1] - hourly.Time[0]
	}
	end := hourly.Time[len(hourly.Time)-1] + interval

	return models.HourlyWeather{
		Time:          hourlyTimestamps(start, end, interval, offset),
		Temperature2m: hourly.Temperature2m,
	}
}

// hourlyTimestamps produces exactly (end − start) / interval instants,
// the i-th being start + i*interval + offset in UTC.
func hourlyTimestamps(start, end, interval, offset int64) []time.Time {
	count := (end - start) / interval
	times := make([]time.Time, 0, count)
	for i := int64(0); i < count; i++ {
		times = append(times, time.Unix(start+i*interval+offset, 0).UTC())
	}
	return times
}
