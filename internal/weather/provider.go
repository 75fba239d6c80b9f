package weather

import (
	"context"
)

// ForecastSource abstracts the forecast API (e.g. weather.tsukumijima.net).
type ForecastSource interface {
	Name() string
	FetchForecast(ctx context.Context, cityCode string) (Response, error)
}

// MessagePoster is the contract the chat client must satisfy.
type MessagePoster interface {
	PostMessage(ctx context.Context, channelID, text string) error
}
