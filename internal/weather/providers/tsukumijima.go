package providers

import (
	"context"
	"net/http"
	"strings"

	"github.com/i474232898/weather-forecast-notifier/internal/weather"
)

// DefaultTsukumijimaBaseURL is the city forecast endpoint of the public
// weather.tsukumijima.net API (a JSON mirror of the JMA forecasts).
const DefaultTsukumijimaBaseURL = "https://weather.tsukumijima.net/api/forecast/city"

// TsukumijimaProvider implements weather.ForecastSource for weather.tsukumijima.net.
type TsukumijimaProvider struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewTsukumijimaProvider(client *http.Client, baseURL string) *TsukumijimaProvider {
	if baseURL == "" {
		baseURL = DefaultTsukumijimaBaseURL
	}
	return &TsukumijimaProvider{
		name:    "tsukumijima",
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (p *TsukumijimaProvider) Name() string {
	return p.name
}

// ForecastURL returns the request URL for cityCode. The code is appended
// as-is.
func (p *TsukumijimaProvider) ForecastURL(cityCode string) string {
	return p.baseURL + "/" + cityCode
}

func (p *TsukumijimaProvider) FetchForecast(ctx context.Context, cityCode string) (weather.Response, error) {
	body, err := doRequest(ctx, p.client, p.ForecastURL(cityCode))
	if err != nil {
		return weather.Response{}, err
	}
	return weather.DecodeResponse(body)
}
