package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-forecast-notifier/internal/weather"
)

const tokyoForecast = `{
	"publicTimeFormatted": "2023/05/01 17:00:00",
	"description": {"text": "晴れています。"},
	"forecasts": [
		{
			"dateLabel": "今日",
			"temperature": {"min": {"celsius": "0"}, "max": {"celsius": "30"}},
			"chanceOfRain": {"T00_06": "--%", "T06_12": "00%", "T12_18": "50%", "T18_24": "70%"}
		}
	]
}`

// fiberTransport serves outbound requests from an in-process fiber app and
// records the URLs it was asked for.
type fiberTransport struct {
	app  *fiber.App
	urls []string
}

func (f *fiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.urls = append(f.urls, req.URL.String())
	return f.app.Test(req, -1)
}

func newFakeForecastAPI(status int, body string) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/api/forecast/city/:code", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Status(status).SendString(body)
	})
	return app
}

func TestTsukumijimaFetchForecast(t *testing.T) {
	transport := &fiberTransport{app: newFakeForecastAPI(fiber.StatusOK, tokyoForecast)}
	p := NewTsukumijimaProvider(&http.Client{Transport: transport}, "")

	resp, err := p.FetchForecast(context.Background(), "130010")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(transport.urls) != 1 {
		t.Fatalf("expected one request, got %d", len(transport.urls))
	}
	if want := "https://weather.tsukumijima.net/api/forecast/city/130010"; transport.urls[0] != want {
		t.Errorf("requested %q, want %q", transport.urls[0], want)
	}
	if resp.PublicTimeFormatted == nil || *resp.PublicTimeFormatted != "2023/05/01 17:00:00" {
		t.Errorf("PublicTimeFormatted = %v", resp.PublicTimeFormatted)
	}
	if len(resp.Forecasts) != 1 || resp.Forecasts[0].ChanceOfRain.Len() != 4 {
		t.Errorf("unexpected forecasts: %+v", resp.Forecasts)
	}
}

func TestTsukumijimaForecastURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		cityCode string
		want     string
	}{
		{name: "default", baseURL: "", cityCode: "130010", want: "https://weather.tsukumijima.net/api/forecast/city/130010"},
		{name: "trailing slash", baseURL: "http://localhost:9000/city/", cityCode: "400040", want: "http://localhost:9000/city/400040"},
		{name: "code is not escaped", baseURL: "http://localhost:9000/city", cityCode: "13?x=1", want: "http://localhost:9000/city/13?x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewTsukumijimaProvider(http.DefaultClient, tt.baseURL)
			if got := p.ForecastURL(tt.cityCode); got != tt.want {
				t.Errorf("ForecastURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTsukumijimaFetchForecastErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantDecode bool
	}{
		{name: "server error", status: fiber.StatusInternalServerError, body: "Internal Server Error", wantErr: errServerError},
		{name: "not found", status: fiber.StatusNotFound, body: `{"message": "not found"}`, wantErr: errUnexpected},
		{name: "malformed json", status: fiber.StatusOK, body: "<html></html>", wantDecode: true},
		{name: "missing fields", status: fiber.StatusOK, body: `{"forecasts": []}`, wantDecode: true},
		{name: "today without chanceOfRain", status: fiber.StatusOK, body: `{"publicTimeFormatted": "t", "description": {"text": "x"}, "forecasts": [{"dateLabel": "今日"}]}`, wantDecode: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &fiberTransport{app: newFakeForecastAPI(tt.status, tt.body)}
			p := NewTsukumijimaProvider(&http.Client{Transport: transport}, "")

			_, err := p.FetchForecast(context.Background(), "130010")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			var decErr *weather.DecodeError
			if got := errors.As(err, &decErr); got != tt.wantDecode {
				t.Errorf("DecodeError = %v, want %v (err: %v)", got, tt.wantDecode, err)
			}
			if len(transport.urls) != 1 {
				t.Errorf("expected exactly one request, got %d", len(transport.urls))
			}
		})
	}
}

func TestTsukumijimaFetchForecastTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	p := NewTsukumijimaProvider(srv.Client(), baseURL)
	if _, err := p.FetchForecast(context.Background(), "130010"); err == nil {
		t.Fatal("expected error from closed server, got nil")
	}
}

func TestDoRequestWithoutClient(t *testing.T) {
	if _, err := doRequest(context.Background(), nil, "http://example.invalid"); !errors.Is(err, errNoHTTPClient) {
		t.Fatalf("expected errNoHTTPClient, got %v", err)
	}
}
