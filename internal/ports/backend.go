package ports

import (
	"context"
	"time"
)

// RegisterParams represents the payload of POST /api/register
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// LoginParams represents the payload of POST /api/login
type LoginParams struct {
	Email    string
	Password string
}

// MessageResponse is the common {mensaje, access_token} success payload
type MessageResponse struct {
	Message     string
	AccessToken string
}

// WeatherPayload represents current conditions for a city
type WeatherPayload struct {
	Name        string
	Country     string
	Description string
	IconCode    string
	TempC       float64
	FeelsLikeC  float64
	HumidityPct float64
	AccessToken string
}

// HistoryRecord is one past weather search as stored by the backend
type HistoryRecord struct {
	City        string
	TempC       float64
	Description string
	Date        time.Time
}

// AdviceResponse carries the text of any AI advice endpoint
type AdviceResponse struct {
	Advice      string
	AccessToken string
}

// ImageFile is an uploaded garment photo
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// OutfitAdviceParams represents the multipart payload of POST /api/v1/ai-outfit
type OutfitAdviceParams struct {
	City   string
	Images []ImageFile
}

// TravelAdviceParams represents the payload of POST /api/v1/ai-travel-assistant.
// Dates use the YYYY-MM-DD layout.
type TravelAdviceParams struct {
	Destination string
	StartDate   string
	EndDate     string
}

// OutfitRecord is one entry of the outfit advice history
type OutfitRecord struct {
	City   string
	Advice string
	Date   time.Time
}

// Backend defines the contract for the remote GuardiánClima API.
// Authenticated calls take the bearer token explicitly.
type Backend interface {
	Register(ctx context.Context, params RegisterParams) (*MessageResponse, error)
	Login(ctx context.Context, params LoginParams) (*MessageResponse, error)
	GetWeather(ctx context.Context, token, city string) (*WeatherPayload, error)
	GetHistory(ctx context.Context, token string) ([]HistoryRecord, error)
	GetBasicAdvice(ctx context.Context, token, city string) (*AdviceResponse, error)
	GetOutfitAdvice(ctx context.Context, token string, params OutfitAdviceParams) (*AdviceResponse, error)
	GetTravelAdvice(ctx context.Context, token string, params TravelAdviceParams) (*AdviceResponse, error)
	UpgradePlan(ctx context.Context, token, plan string) (*MessageResponse, error)
	SavePreferences(ctx context.Context, token string, answers map[string]string) (*MessageResponse, error)
	GetOutfitHistory(ctx context.Context, token string) ([]OutfitRecord, error)
	Ping(ctx context.Context) error
}
