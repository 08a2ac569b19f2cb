package backend

import (
	"context"
	"time"

	"guardianclima.app/internal/ports"
)

// MetricsDecorator records the latency and outcome of every API call
type MetricsDecorator struct {
	backend ports.Backend
	metrics ports.MetricsCollector
	now     func() time.Time
}

func NewMetricsDecorator(backend ports.Backend, metrics ports.MetricsCollector) ports.Backend {
	return &MetricsDecorator{backend: backend, metrics: metrics, now: time.Now}
}

func measure[T any](ctx context.Context, d *MetricsDecorator, endpoint string, call func() (T, error)) (T, error) {
	start := d.now()
	result, err := call()
	d.metrics.RecordBackendCall(ctx, endpoint, d.now().Sub(start), err)
	return result, err
}

func (d *MetricsDecorator) Register(ctx context.Context, params ports.RegisterParams) (*ports.MessageResponse, error) {
	return measure(ctx, d, "register", func() (*ports.MessageResponse, error) {
		return d.backend.Register(ctx, params)
	})
}

func (d *MetricsDecorator) Login(ctx context.Context, params ports.LoginParams) (*ports.MessageResponse, error) {
	return measure(ctx, d, "login", func() (*ports.MessageResponse, error) {
		return d.backend.Login(ctx, params)
	})
}

func (d *MetricsDecorator) GetWeather(ctx context.Context, token, city string) (*ports.WeatherPayload, error) {
	return measure(ctx, d, "weather", func() (*ports.WeatherPayload, error) {
		return d.backend.GetWeather(ctx, token, city)
	})
}

func (d *MetricsDecorator) GetHistory(ctx context.Context, token string) ([]ports.HistoryRecord, error) {
	return measure(ctx, d, "history", func() ([]ports.HistoryRecord, error) {
		return d.backend.GetHistory(ctx, token)
	})
}

func (d *MetricsDecorator) GetBasicAdvice(ctx context.Context, token, city string) (*ports.AdviceResponse, error) {
	return measure(ctx, d, "ai_advice", func() (*ports.AdviceResponse, error) {
		return d.backend.GetBasicAdvice(ctx, token, city)
	})
}

func (d *MetricsDecorator) GetOutfitAdvice(ctx context.Context, token string, params ports.OutfitAdviceParams) (*ports.AdviceResponse, error) {
	return measure(ctx, d, "ai_outfit", func() (*ports.AdviceResponse, error) {
		return d.backend.GetOutfitAdvice(ctx, token, params)
	})
}

func (d *MetricsDecorator) GetTravelAdvice(ctx context.Context, token string, params ports.TravelAdviceParams) (*ports.AdviceResponse, error) {
	return measure(ctx, d, "ai_travel", func() (*ports.AdviceResponse, error) {
		return d.backend.GetTravelAdvice(ctx, token, params)
	})
}

func (d *MetricsDecorator) UpgradePlan(ctx context.Context, token, plan string) (*ports.MessageResponse, error) {
	return measure(ctx, d, "upgrade", func() (*ports.MessageResponse, error) {
		return d.backend.UpgradePlan(ctx, token, plan)
	})
}

func (d *MetricsDecorator) SavePreferences(ctx context.Context, token string, answers map[string]string) (*ports.MessageResponse, error) {
	return measure(ctx, d, "preferences", func() (*ports.MessageResponse, error) {
		return d.backend.SavePreferences(ctx, token, answers)
	})
}

func (d *MetricsDecorator) GetOutfitHistory(ctx context.Context, token string) ([]ports.OutfitRecord, error) {
	return measure(ctx, d, "outfits", func() ([]ports.OutfitRecord, error) {
		return d.backend.GetOutfitHistory(ctx, token)
	})
}

// Ping is not measured
func (d *MetricsDecorator) Ping(ctx context.Context) error {
	return d.backend.Ping(ctx)
}
