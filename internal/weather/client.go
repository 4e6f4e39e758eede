// Package weather is the outbound client for the Open-Meteo forecast API.
// It fetches raw forecast payloads; reshaping into the service's response
// format is owned by the service layer.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// currentVariables is the fixed set of current-conditions variables the
// climate endpoint requests, in upstream naming.
var currentVariables = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"apparent_temperature",
	"is_day",
	"precipitation",
	"rain",
	"showers",
	"snowfall",
	"weather_code",
	"cloud_cover",
	"pressure_msl",
	"surface_pressure",
	"wind_speed_10m",
	"wind_direction_10m",
	"wind_gusts_10m",
}

// ClientConfig configures the forecast client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the contract the weather service consumes; *ForecastClient is
// the production implementation.
type Client interface {
	Forecast(ctx context.Context, latitude, longitude string) (*ForecastResponse, error)
}

// ForecastClient calls the Open-Meteo forecast endpoint over HTTP. The
// request timeout bounds tail latency of the passthrough; the upstream call
// is never retried.
type ForecastClient struct {
	client *resty.Client
}

// ForecastResponse is the upstream payload, requested with
// timeformat=unixtime so every timestamp arrives as UTC unix seconds.
type ForecastResponse struct {
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	Elevation        float64       `json:"elevation"`
	UTCOffsetSeconds int64         `json:"utc_offset_seconds"`
	Current          *CurrentBlock `json:"current"`
	Hourly           *HourlyBlock  `json:"hourly"`
}

// CurrentBlock carries the current conditions. Time is in "local apparent
// time": unix seconds that still need the UTC offset added before they
// denote an absolute instant.
type CurrentBlock struct {
	Time     int64 `json:"time"`
	Interval int64 `json:"interval"`

	Temperature2m       float64 `json:"temperature_2m"`
	RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	IsDay               float64 `json:"is_day"`
	Precipitation       float64 `json:"precipitation"`
	Rain                float64 `json:"rain"`
	Showers             float64 `json:"showers"`
	Snowfall            float64 `json:"snowfall"`
	WeatherCode         float64 `json:"weather_code"`
	CloudCover          float64 `json:"cloud_cover"`
	PressureMSL         float64 `json:"pressure_msl"`
	SurfacePressure     float64 `json:"surface_pressure"`
	WindSpeed10m        float64 `json:"wind_speed_10m"`
	WindDirection10m    float64 `json:"wind_direction_10m"`
	WindGusts10m        float64 `json:"wind_gusts_10m"`
}

// HourlyBlock carries the hourly temperature series with its timestamps,
// same time convention as [CurrentBlock].
type HourlyBlock struct {
	Time          []int64   `json:"time"`
	Temperature2m []float64 `json:"temperature_2m"`
}

// NewForecastClient constructs a [ForecastClient] against cfg.BaseURL.
func NewForecastClient(cfg ClientConfig) *ForecastClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &ForecastClient{client: cli}
}

// Forecast requests current conditions (all 15 variables) and the hourly
// temperature series for the given coordinates.
func (c *ForecastClient) Forecast(ctx context.Context, latitude, longitude string) (*ForecastResponse, error) {
	var forecast ForecastResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":   latitude,
			"longitude":  longitude,
			"current":    strings.Join(currentVariables, ","),
			"hourly":     "temperature_2m",
			"timeformat": "unixtime",
		}).
		SetResult(&forecast).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("forecast request: upstream returned %s", strconv.Itoa(resp.StatusCode()))
	}

	return &forecast, nil
}
