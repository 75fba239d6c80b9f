package weather

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TodayMarker is the dateLabel the forecast API uses for today's entry.
const TodayMarker = "今日"

// Response is the subset of the forecast API document this service reads.
// Pointer fields with a required tag must be present; empty values are kept.
type Response struct {
	PublicTimeFormatted *string      `json:"publicTimeFormatted" validate:"required"`
	Description         *Description `json:"description" validate:"required"`
	Forecasts           []Forecast   `json:"forecasts" validate:"required"`
}

// Description holds the free-text weather summary.
type Description struct {
	Text *string `json:"text" validate:"required"`
}

// Forecast is a single daily forecast entry. Only the entry picked as today
// has to carry chanceOfRain.
type Forecast struct {
	DateLabel   string      `json:"dateLabel"`
	Temperature Temperature `json:"temperature"`

	// ChanceOfRain keeps the time slots in the order the API sent them.
	ChanceOfRain *orderedmap.OrderedMap[string, string] `json:"chanceOfRain"`
}

// today returns the first entry labelled TodayMarker, or nil.
func (r Response) today() *Forecast {
	for i := range r.Forecasts {
		if r.Forecasts[i].DateLabel == TodayMarker {
			return &r.Forecasts[i]
		}
	}
	return nil
}

// Temperature carries the daily min/max readings. Either side may be null
// for days the API has no observation or forecast for yet.
type Temperature struct {
	Min *TemperatureValue `json:"min"`
	Max *TemperatureValue `json:"max"`
}

// TemperatureValue is a reading in both units, as strings, each nullable.
type TemperatureValue struct {
	Celsius    *string `json:"celsius"`
	Fahrenheit *string `json:"fahrenheit"`
}

// TodayForecast is everything the outgoing message is built from.
type TodayForecast struct {
	PublicTime  string
	Description string
	MinCelsius  *string // nil when the API reported null
	MaxCelsius  *string // nil when the API reported null
	RainLines   []string
}

func (t *TemperatureValue) celsius() *string {
	if t == nil {
		return nil
	}
	return t.Celsius
}
