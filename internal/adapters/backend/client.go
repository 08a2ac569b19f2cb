// Package backend talks to the remote GuardiánClima HTTP API
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

const (
	requestIDHeader = "X-Request-ID"
	defaultTimeout  = 30 * time.Second
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientParams holds parameters for creating the API client
type ClientParams struct {
	Config     ports.BackendConfig
	HTTPClient HTTPClient
	Logger     ports.Logger
}

// Client implements ports.Backend over HTTP
type Client struct {
	baseURL string
	client  HTTPClient
	limiter *rate.Limiter
	logger  ports.Logger
}

func NewClient(params ClientParams) (*Client, error) {
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	baseURL := strings.TrimRight(params.Config.BaseURL, "/")
	if baseURL == "" {
		return nil, errors.NewConfigurationError("backend base URL cannot be empty", nil)
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		timeout := params.Config.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if params.Config.RateLimit > 0 {
		limit = rate.Limit(params.Config.RateLimit)
	}
	burst := params.Config.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL: baseURL,
		client:  httpClient,
		limiter: rate.NewLimiter(limit, burst),
		logger:  params.Logger,
	}, nil
}

// request describes one call to the API
type request struct {
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
	// shown when the API answers an error without an "error" field
	fallback string
}

func jsonBody(v interface{}) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("failed to encode request: %v", err))
	}
	return bytes.NewReader(data), nil
}

// do sends the request and decodes a successful JSON answer into out
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.NewExternalAPIError(r.fallback, fmt.Errorf("rate limiter: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return errors.NewExternalAPIError(r.fallback, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError(r.fallback, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close backend response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp, r.fallback)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError(r.fallback, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// statusError maps a non-2xx answer to the error taxonomy. The API message is
// kept verbatim because it is shown to the user.
func (c *Client) statusError(resp *http.Response, fallback string) error {
	message := fallback
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}
	cause := fmt.Errorf("backend returned status %d", resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusConflict:
		return errors.NewValidationError(message)
	case http.StatusUnauthorized:
		return errors.NewUnauthorizedError(message)
	case http.StatusForbidden:
		return errors.NewForbiddenError(message)
	case http.StatusNotFound:
		return errors.NewNotFoundError(message)
	default:
		return errors.NewExternalAPIError(message, cause)
	}
}

func (c *Client) Register(ctx context.Context, params ports.RegisterParams) (*ports.MessageResponse, error) {
	body, err := jsonBody(map[string]string{
		"username": params.Username,
		"email":    params.Email,
		"password": params.Password,
	})
	if err != nil {
		return nil, err
	}

	var resp messageResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/register",
		body:        body,
		contentType: "application/json",
		fallback:    "Error en el registro.",
	}, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) Login(ctx context.Context, params ports.LoginParams) (*ports.MessageResponse, error) {
	body, err := jsonBody(map[string]string{
		"email":    params.Email,
		"password": params.Password,
	})
	if err != nil {
		return nil, err
	}

	var resp messageResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/login",
		body:        body,
		contentType: "application/json",
		fallback:    "Error en el inicio de sesión.",
	}, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) GetWeather(ctx context.Context, token, city string) (*ports.WeatherPayload, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var resp weatherResponse
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/v1/weather/" + url.PathEscape(city),
		token:    token,
		fallback: "Ciudad no encontrada o error en el servidor.",
	}, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) GetHistory(ctx context.Context, token string) ([]ports.HistoryRecord, error) {
	var resp []historyRecord
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/v1/history",
		token:    token,
		fallback: "No se pudo cargar el historial.",
	}, &resp); err != nil {
		return nil, err
	}

	records := make([]ports.HistoryRecord, 0, len(resp))
	for _, r := range resp {
		records = append(records, r.toPort())
	}
	return records, nil
}

func (c *Client) GetBasicAdvice(ctx context.Context, token, city string) (*ports.AdviceResponse, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var resp adviceResponse
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/v1/ai-advice/" + url.PathEscape(city),
		token:    token,
		fallback: "No se pudo generar el consejo.",
	}, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) GetOutfitAdvice(ctx context.Context, token string, params ports.OutfitAdviceParams) (*ports.AdviceResponse, error) {
	body, contentType, err := outfitForm(params)
	if err != nil {
		return nil, err
	}

	var resp adviceResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/v1/ai-outfit",
		token:       token,
		body:        body,
		contentType: contentType,
		fallback:    "Error al generar el consejo de vestimenta por IA.",
	}, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) GetTravelAdvice(ctx context.Context, token string, params ports.TravelAdviceParams) (*ports.AdviceResponse, error) {
	body, err := jsonBody(map[string]string{
		"ciudad_destino": params.Destination,
		"fecha_inicio":   params.StartDate,
		"fecha_fin":      params.EndDate,
	})
	if err != nil {
		return nil, err
	}

	var resp adviceResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/v1/ai-travel-assistant",
		token:       token,
		body:        body,
		contentType: "application/json",
		fallback:    "No se pudo generar el consejo de viaje.",
	}, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) UpgradePlan(ctx context.Context, token, plan string) (*ports.MessageResponse, error) {
	body, err := jsonBody(map[string]string{"plan": plan})
	if err != nil {
		return nil, err
	}

	var resp messageResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/user/upgrade",
		token:       token,
		body:        body,
		contentType: "application/json",
		fallback:    "No se pudo actualizar el plan.",
	}, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) SavePreferences(ctx context.Context, token string, answers map[string]string) (*ports.MessageResponse, error) {
	body, err := jsonBody(answers)
	if err != nil {
		return nil, err
	}

	var resp messageResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/user/preferences",
		token:       token,
		body:        body,
		contentType: "application/json",
		fallback:    "No se pudieron guardar las preferencias.",
	}, &resp); err != nil {
		return nil, err
	}
	return resp.toPort(), nil
}

func (c *Client) GetOutfitHistory(ctx context.Context, token string) ([]ports.OutfitRecord, error) {
	var resp []outfitRecord
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/v1/outfits",
		token:    token,
		fallback: "No se pudo cargar el historial de vestimenta.",
	}, &resp); err != nil {
		return nil, err
	}

	records := make([]ports.OutfitRecord, 0, len(resp))
	for _, r := range resp {
		records = append(records, r.toPort())
	}
	return records, nil
}

// Ping reports whether the API answers at all. Any HTTP status counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return errors.NewExternalAPIError("backend unreachable", err)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("backend unreachable", err)
	}
	_ = resp.Body.Close()
	return nil
}
