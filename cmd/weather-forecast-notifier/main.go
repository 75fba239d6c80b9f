package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/i474232898/weather-forecast-notifier/internal/common"
	"github.com/i474232898/weather-forecast-notifier/internal/config"
	"github.com/i474232898/weather-forecast-notifier/internal/notify"
	"github.com/i474232898/weather-forecast-notifier/internal/telemetry"
	"github.com/i474232898/weather-forecast-notifier/internal/weather"
	"github.com/i474232898/weather-forecast-notifier/internal/weather/providers"
)

const serviceName = "weather-forecast-notifier"

// newLogger is swapped in tests to capture log output.
var newLogger = common.NewLogger

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   serviceName + " <city-code> <token> <channel-id>",
		Short: "Post today's weather forecast for a city to a Slack channel",
		Long: `Fetches the forecast for <city-code> from weather.tsukumijima.net,
formats today's date, summary, min/max temperature and chance of rain,
and posts it to <channel-id> using the Slack bot <token>.`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], args[1], args[2])
		},
	}
}

func run(ctx context.Context, cityCode, token, channelID string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.EnvFileErr != nil {
		logger.Info("no .env file found or error loading it", zap.Error(cfg.EnvFileErr))
	}

	if err := notifyForecast(ctx, cfg, logger, cityCode, token, channelID); err != nil {
		logger.Error("forecast notification failed", zap.Error(err))
		return err
	}
	return nil
}

func notifyForecast(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger, cityCode, token, channelID string) error {
	shutdown, err := telemetry.Setup(cfg.ZipkinEndpoint, serviceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	// One client per run; the timeout is zero unless HTTP_TIMEOUT is set.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	source := providers.NewTsukumijimaProvider(httpClient, cfg.WeatherAPIBaseURL)
	poster := notify.NewSlackNotifier(token, cfg.SlackAPIURL)

	service := weather.NewService(source, poster, logger)
	return service.Run(ctx, cityCode, channelID)
}
