package weather

import (
	"errors"
	"fmt"
)

// ErrNoTodayForecast is returned when no forecast entry is labelled as today.
var ErrNoTodayForecast = errors.New("no forecast entry for today")

// ExtractToday pulls the fields of the first forecast labelled TodayMarker,
// together with the document-level publication time and summary.
func ExtractToday(resp Response) (TodayForecast, error) {
	today := resp.today()
	if today == nil {
		return TodayForecast{}, fmt.Errorf("%w (%d entries)", ErrNoTodayForecast, len(resp.Forecasts))
	}
	if err := checkToday(today); err != nil {
		return TodayForecast{}, err
	}

	return TodayForecast{
		PublicTime:  deref(resp.PublicTimeFormatted),
		Description: descriptionText(resp.Description),
		MinCelsius:  today.Temperature.Min.celsius(),
		MaxCelsius:  today.Temperature.Max.celsius(),
		RainLines:   rainLines(today),
	}, nil
}

func descriptionText(d *Description) string {
	if d == nil {
		return ""
	}
	return deref(d.Text)
}

// rainLines renders each chance-of-rain slot as "slot: value" in API order.
func rainLines(f *Forecast) []string {
	lines := make([]string, 0, f.ChanceOfRain.Len())
	for pair := f.ChanceOfRain.Oldest(); pair != nil; pair = pair.Next() {
		lines = append(lines, pair.Key+": "+pair.Value)
	}
	return lines
}
