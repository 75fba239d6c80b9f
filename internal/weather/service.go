package weather

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "weather-forecast-notifier"

// Service runs the fetch, extract, format and post pipeline once per call.
type Service struct {
	source ForecastSource
	poster MessagePoster
	logger *zap.Logger
}

// NewService creates a new Service.
func NewService(source ForecastSource, poster MessagePoster, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source: source,
		poster: poster,
		logger: logger,
	}
}

// Run fetches the forecast for cityCode and posts today's summary to
// channelID. Any failure stops the run; nothing is posted unless every
// earlier stage succeeded.
func (s *Service) Run(ctx context.Context, cityCode, channelID string) error {
	log := s.logger.With(zap.String("run_id", uuid.NewString()))
	tracer := otel.Tracer(tracerName)

	ctx, span := tracer.Start(ctx, "notify-forecast", trace.WithAttributes(
		attribute.String("city_code", cityCode),
		attribute.String("channel_id", channelID),
	))
	defer span.End()

	log.Info("fetching forecast", zap.String("source", s.source.Name()), zap.String("city_code", cityCode))
	resp, err := s.fetch(ctx, cityCode)
	if err != nil {
		return fail(span, fmt.Errorf("fetch forecast for %s: %w", cityCode, err))
	}

	today, err := ExtractToday(resp)
	if err != nil {
		return fail(span, err)
	}
	log.Debug("extracted today's forecast",
		zap.String("public_time", today.PublicTime),
		zap.Int("rain_slots", len(today.RainLines)),
	)

	message := FormatMessage(today)

	if err := s.post(ctx, channelID, message); err != nil {
		return fail(span, err)
	}
	log.Info("forecast posted", zap.String("channel_id", channelID))
	return nil
}

func (s *Service) fetch(ctx context.Context, cityCode string) (Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "fetch-forecast")
	defer span.End()

	resp, err := s.source.FetchForecast(ctx, cityCode)
	if err != nil {
		return Response{}, fail(span, err)
	}
	return resp, nil
}

func (s *Service) post(ctx context.Context, channelID, message string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "post-message")
	defer span.End()

	if err := s.poster.PostMessage(ctx, channelID, message); err != nil {
		return fail(span, err)
	}
	return nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
