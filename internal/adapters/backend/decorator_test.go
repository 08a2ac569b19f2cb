package backend

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"guardianclima.app/internal/mocks"
	"guardianclima.app/internal/ports"
)

func TestLoggingDecorator_Success(t *testing.T) {
	inner := mocks.NewBackend(t)
	logger := mocks.NewLogger(t)
	decorator := NewLoggingDecorator(inner, logger)
	ctx := context.Background()

	inner.EXPECT().GetWeather(ctx, "tok", "Lima").Return(&ports.WeatherPayload{Name: "Lima"}, nil).Once()
	logger.EXPECT().Info("Backend request started", mock.MatchedBy(func(fields []ports.Field) bool {
		return len(fields) == 3 && fields[0].Value == "weather" && fields[2].Value == "Lima"
	})).Once()
	logger.EXPECT().Info("Backend request completed", mock.Anything).Once()

	weather, err := decorator.GetWeather(ctx, "tok", "Lima")

	require.NoError(t, err)
	assert.Equal(t, "Lima", weather.Name)
}

func TestLoggingDecorator_Error(t *testing.T) {
	inner := mocks.NewBackend(t)
	logger := mocks.NewLogger(t)
	decorator := NewLoggingDecorator(inner, logger)
	ctx := context.Background()
	apiErr := stderrors.New("boom")

	inner.EXPECT().Login(ctx, mock.Anything).Return(nil, apiErr).Once()
	logger.EXPECT().Info("Backend request started", mock.Anything).Once()
	logger.EXPECT().Error("Backend request failed", mock.MatchedBy(func(fields []ports.Field) bool {
		for _, f := range fields {
			if f.Key == "password" || f.Value == "secret" {
				return false
			}
		}
		return true
	})).Once()

	_, err := decorator.Login(ctx, ports.LoginParams{Email: "ana@example.com", Password: "secret"})

	assert.ErrorIs(t, err, apiErr)
}

func TestLoggingDecorator_Ping(t *testing.T) {
	inner := mocks.NewBackend(t)
	logger := setupLoggerMock(t)
	decorator := NewLoggingDecorator(inner, logger)

	inner.EXPECT().Ping(mock.Anything).Return(nil).Once()

	assert.NoError(t, decorator.Ping(context.Background()))
}

func TestMetricsDecorator_RecordsCalls(t *testing.T) {
	inner := mocks.NewBackend(t)
	metrics := mocks.NewMetricsCollector(t)
	decorator := NewMetricsDecorator(inner, metrics).(*MetricsDecorator)
	start := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	calls := 0
	decorator.now = func() time.Time {
		calls++
		return start.Add(time.Duration(calls-1) * 250 * time.Millisecond)
	}
	ctx := context.Background()
	apiErr := stderrors.New("down")

	inner.EXPECT().GetHistory(ctx, "tok").Return(nil, apiErr).Once()
	metrics.EXPECT().RecordBackendCall(ctx, "history", 250*time.Millisecond, apiErr).Once()

	_, err := decorator.GetHistory(ctx, "tok")

	assert.ErrorIs(t, err, apiErr)
}

func TestMetricsDecorator_PingNotMeasured(t *testing.T) {
	inner := mocks.NewBackend(t)
	metrics := mocks.NewMetricsCollector(t)
	decorator := NewMetricsDecorator(inner, metrics)

	inner.EXPECT().Ping(mock.Anything).Return(nil).Once()

	assert.NoError(t, decorator.Ping(context.Background()))
	metrics.AssertNotCalled(t, "RecordBackendCall", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDecorators_DelegateEveryCall(t *testing.T) {
	inner := mocks.NewBackend(t)
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordBackendCall(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	backend := NewLoggingDecorator(NewMetricsDecorator(inner, metrics), setupLoggerMock(t))
	ctx := context.Background()

	inner.EXPECT().Register(ctx, mock.Anything).Return(&ports.MessageResponse{}, nil).Once()
	inner.EXPECT().GetBasicAdvice(ctx, "tok", "Lima").Return(&ports.AdviceResponse{}, nil).Once()
	inner.EXPECT().GetOutfitAdvice(ctx, "tok", mock.Anything).Return(&ports.AdviceResponse{}, nil).Once()
	inner.EXPECT().GetTravelAdvice(ctx, "tok", mock.Anything).Return(&ports.AdviceResponse{}, nil).Once()
	inner.EXPECT().UpgradePlan(ctx, "tok", "pro").Return(&ports.MessageResponse{}, nil).Once()
	inner.EXPECT().SavePreferences(ctx, "tok", mock.Anything).Return(&ports.MessageResponse{}, nil).Once()
	inner.EXPECT().GetOutfitHistory(ctx, "tok").Return(nil, nil).Once()

	_, err := backend.Register(ctx, ports.RegisterParams{Username: "ana"})
	require.NoError(t, err)
	_, err = backend.GetBasicAdvice(ctx, "tok", "Lima")
	require.NoError(t, err)
	_, err = backend.GetOutfitAdvice(ctx, "tok", ports.OutfitAdviceParams{City: "Lima"})
	require.NoError(t, err)
	_, err = backend.GetTravelAdvice(ctx, "tok", ports.TravelAdviceParams{Destination: "Madrid"})
	require.NoError(t, err)
	_, err = backend.UpgradePlan(ctx, "tok", "pro")
	require.NoError(t, err)
	_, err = backend.SavePreferences(ctx, "tok", map[string]string{"estilo": "casual"})
	require.NoError(t, err)
	_, err = backend.GetOutfitHistory(ctx, "tok")
	require.NoError(t, err)
}
