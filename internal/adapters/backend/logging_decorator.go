package backend

import (
	"context"
	"time"

	"guardianclima.app/internal/ports"
)

// LoggingDecorator decorates the API client with structured logging.
// Credentials, tokens and image contents are never logged.
type LoggingDecorator struct {
	backend ports.Backend
	logger  ports.Logger
}

func NewLoggingDecorator(backend ports.Backend, logger ports.Logger) ports.Backend {
	return &LoggingDecorator{backend: backend, logger: logger}
}

func logCall[T any](d *LoggingDecorator, endpoint string, fields []ports.Field, call func() (T, error)) (T, error) {
	d.logger.Info("Backend request started",
		append([]ports.Field{ports.F("endpoint", endpoint), ports.F("event", "request")}, fields...)...)

	startTime := time.Now()
	result, err := call()
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Backend request failed",
			append([]ports.Field{
				ports.F("endpoint", endpoint),
				ports.F("event", "error"),
				ports.F("duration_ms", duration.Milliseconds()),
				ports.F("error", err.Error()),
			}, fields...)...)
		return result, err
	}

	d.logger.Info("Backend request completed",
		append([]ports.Field{
			ports.F("endpoint", endpoint),
			ports.F("event", "response"),
			ports.F("duration_ms", duration.Milliseconds()),
		}, fields...)...)
	return result, nil
}

func (d *LoggingDecorator) Register(ctx context.Context, params ports.RegisterParams) (*ports.MessageResponse, error) {
	return logCall(d, "register", []ports.Field{ports.F("username", params.Username)}, func() (*ports.MessageResponse, error) {
		return d.backend.Register(ctx, params)
	})
}

func (d *LoggingDecorator) Login(ctx context.Context, params ports.LoginParams) (*ports.MessageResponse, error) {
	return logCall(d, "login", nil, func() (*ports.MessageResponse, error) {
		return d.backend.Login(ctx, params)
	})
}

func (d *LoggingDecorator) GetWeather(ctx context.Context, token, city string) (*ports.WeatherPayload, error) {
	return logCall(d, "weather", []ports.Field{ports.F("city", city)}, func() (*ports.WeatherPayload, error) {
		return d.backend.GetWeather(ctx, token, city)
	})
}

func (d *LoggingDecorator) GetHistory(ctx context.Context, token string) ([]ports.HistoryRecord, error) {
	return logCall(d, "history", nil, func() ([]ports.HistoryRecord, error) {
		return d.backend.GetHistory(ctx, token)
	})
}

func (d *LoggingDecorator) GetBasicAdvice(ctx context.Context, token, city string) (*ports.AdviceResponse, error) {
	return logCall(d, "ai_advice", []ports.Field{ports.F("city", city)}, func() (*ports.AdviceResponse, error) {
		return d.backend.GetBasicAdvice(ctx, token, city)
	})
}

func (d *LoggingDecorator) GetOutfitAdvice(ctx context.Context, token string, params ports.OutfitAdviceParams) (*ports.AdviceResponse, error) {
	fields := []ports.Field{ports.F("city", params.City), ports.F("images", len(params.Images))}
	return logCall(d, "ai_outfit", fields, func() (*ports.AdviceResponse, error) {
		return d.backend.GetOutfitAdvice(ctx, token, params)
	})
}

func (d *LoggingDecorator) GetTravelAdvice(ctx context.Context, token string, params ports.TravelAdviceParams) (*ports.AdviceResponse, error) {
	fields := []ports.Field{
		ports.F("destination", params.Destination),
		ports.F("start_date", params.StartDate),
		ports.F("end_date", params.EndDate),
	}
	return logCall(d, "ai_travel", fields, func() (*ports.AdviceResponse, error) {
		return d.backend.GetTravelAdvice(ctx, token, params)
	})
}

func (d *LoggingDecorator) UpgradePlan(ctx context.Context, token, plan string) (*ports.MessageResponse, error) {
	return logCall(d, "upgrade", []ports.Field{ports.F("plan", plan)}, func() (*ports.MessageResponse, error) {
		return d.backend.UpgradePlan(ctx, token, plan)
	})
}

func (d *LoggingDecorator) SavePreferences(ctx context.Context, token string, answers map[string]string) (*ports.MessageResponse, error) {
	return logCall(d, "preferences", []ports.Field{ports.F("answers", len(answers))}, func() (*ports.MessageResponse, error) {
		return d.backend.SavePreferences(ctx, token, answers)
	})
}

func (d *LoggingDecorator) GetOutfitHistory(ctx context.Context, token string) ([]ports.OutfitRecord, error) {
	return logCall(d, "outfits", nil, func() ([]ports.OutfitRecord, error) {
		return d.backend.GetOutfitHistory(ctx, token)
	})
}

func (d *LoggingDecorator) Ping(ctx context.Context) error {
	_, err := logCall(d, "ping", nil, func() (struct{}, error) {
		return struct{}{}, d.backend.Ping(ctx)
	})
	return err
}
