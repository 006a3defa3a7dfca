package main

import "github.com/lixenwraith/wthr/forecast"

// payload is the JSON document wthr renders
type payload struct {
	Temperature   []float64         `json:"temperature"`
	Precipitation []float64         `json:"precipitation,omitempty"`
	StartHour     int               `json:"start_hour"`
	Offset        int               `json:"offset"` // first hour drawn
	Date          string            `json:"date"`
	Translations  map[string]string `json:"translations,omitempty"` // English label -> display text
	Current       *currentPayload   `json:"current,omitempty"`
}

type currentPayload struct {
	Place         string  `json:"place"`
	Icon          string  `json:"icon"`
	Description   string  `json:"description"`
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feels_like"`
	Unit          string  `json:"unit"`
	Humidity      int     `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	WindUnit      string  `json:"wind_unit"`
	WindDirection string  `json:"wind_direction"`
	Pressure      float64 `json:"pressure"`
	DewPoint      float64 `json:"dew_point"`
	Precipitation float64 `json:"precipitation"`
	PrecipUnit    string  `json:"precipitation_unit"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
}

func (c *currentPayload) input(labels forecast.Labels) forecast.CurrentInput {
	return forecast.CurrentInput{
		Place:         c.Place,
		Icon:          c.Icon,
		Description:   c.Description,
		Temperature:   c.Temperature,
		FeelsLike:     c.FeelsLike,
		Unit:          c.Unit,
		Humidity:      c.Humidity,
		WindSpeed:     c.WindSpeed,
		WindUnit:      c.WindUnit,
		WindDirection: c.WindDirection,
		Pressure:      c.Pressure,
		DewPoint:      c.DewPoint,
		Precipitation: c.Precipitation,
		PrecipUnit:    c.PrecipUnit,
		Sunrise:       c.Sunrise,
		Sunset:        c.Sunset,
		Labels:        labels,
	}
}
