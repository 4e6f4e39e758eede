package models

import "time"

// WeatherReport is the reshaped forecast returned by GET /climate, wrapped
// in a {"data": ...} envelope by the handler.
type WeatherReport struct {
	Current CurrentWeather `json:"current"`
	Hourly  HourlyWeather  `json:"hourly"`
}

// CurrentWeather carries the current-conditions block. Field names follow
// the upstream variable names so the payload stays recognizable to clients
// of the forecast API.
type CurrentWeather struct {
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	Elevation        float64   `json:"elevation"`
	UTCOffsetSeconds int64     `json:"utcOffsetSeconds"`
	Time             time.Time `json:"time"`

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

// HourlyWeather zips hourly timestamps with the temperature series. Both
// slices always have equal length.
type HourlyWeather struct {
	Time          []time.Time `json:"time"`
	Temperature2m []float64   `json:"temperature_2m"`
}
