package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/avelarde/climatask/internal/service"
	"github.com/avelarde/climatask/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClimate_WrapsReportInDataEnvelope(t *testing.T) {
	reportTime := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	svcs := newTestServices()
	svcs.WeatherService = &mockWeatherService{
		reportFn: func(_ context.Context, latitude, longitude, apiKey string) (models.WeatherReport, error) {
			assert.Equal(t, "52.52", latitude)
			assert.Equal(t, "13.405", longitude)
			assert.Equal(t, "climate", apiKey)
			return models.WeatherReport{
				Current: models.CurrentWeather{
					Latitude:      52.52,
					Longitude:     13.405,
					Time:          reportTime,
					Temperature2m: 21.4,
				},
				Hourly: models.HourlyWeather{
					Time:          []time.Time{reportTime},
					Temperature2m: []float64{21.4},
				},
			}, nil
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodGet, "/climate?latitude=52.52&longitude=13.405&apikey=climate", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Data models.WeatherReport `json:"data"`
	}
	require.NoError(t, decodeBody(rec, &got))
	assert.Equal(t, 21.4, got.Data.Current.Temperature2m)
	require.Len(t, got.Data.Hourly.Time, 1)
	assert.Equal(t, reportTime, got.Data.Hourly.Time[0])
}

func TestClimate_InvalidAPIKey(t *testing.T) {
	svcs := newTestServices()
	svcs.WeatherService = &mockWeatherService{
		reportFn: func(_ context.Context, _, _, _ string) (models.WeatherReport, error) {
			return models.WeatherReport{}, service.ErrInvalidAPIKey
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodGet, "/climate?latitude=1&longitude=1&apikey=wrong", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid API key"}`, rec.Body.String())
}

func TestClimate_NoForecastData(t *testing.T) {
	svcs := newTestServices()
	svcs.WeatherService = &mockWeatherService{
		reportFn: func(_ context.Context, _, _, _ string) (models.WeatherReport, error) {
			return models.WeatherReport{}, service.ErrNoForecastData
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodGet, "/climate?latitude=1&longitude=1&apikey=climate", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClimate_StaysOpenWhenAuthEnabled(t *testing.T) {
	svcs := newTestServices()
	rec := doRequestWithAuth(t, svcs, http.MethodGet, "/climate?latitude=1&longitude=1&apikey=climate")

	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}
