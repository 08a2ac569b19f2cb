package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"guardianclima.app/internal/mocks"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientParams{
		Config: ports.BackendConfig{BaseURL: server.URL + "/", Timeout: 5 * time.Second, RateLimit: 100, RateBurst: 10},
		Logger: setupLoggerMock(t),
	})
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	assert.NoError(t, err)
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(ClientParams{Config: ports.BackendConfig{BaseURL: "http://x"}})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewClient(ClientParams{Logger: setupLoggerMock(t)})
	assert.True(t, errors.IsConfigurationError(err))
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "ana@example.com", "password": "secret"}, body)

		writeJSON(t, w, http.StatusOK, `{"access_token": "jwt-token"}`)
	})

	resp, err := client.Login(context.Background(), ports.LoginParams{Email: "ana@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.AccessToken)
}

func TestClient_Register(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/register", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, `{"mensaje": "Usuario ana creado con éxito"}`)
	})

	resp, err := client.Register(context.Background(), ports.RegisterParams{Username: "ana", Email: "a@b.c", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "Usuario ana creado con éxito", resp.Message)
}

func TestClient_GetWeather(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/weather/San José", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, `{
			"name": "San José",
			"sys": {"country": "CR"},
			"main": {"temp": 24.3, "feels_like": 25.1, "humidity": 70},
			"weather": [{"description": "nubes dispersas", "icon": "03d"}]
		}`)
	})

	weather, err := client.GetWeather(context.Background(), "tok", "San José")

	require.NoError(t, err)
	assert.Equal(t, &ports.WeatherPayload{
		Name:        "San José",
		Country:     "CR",
		Description: "nubes dispersas",
		IconCode:    "03d",
		TempC:       24.3,
		FeelsLikeC:  25.1,
		HumidityPct: 70,
	}, weather)
}

func TestClient_GetWeather_EmptyCity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.GetWeather(context.Background(), "tok", "  ")

	assert.True(t, errors.IsValidationError(err))
}

func TestClient_GetHistory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/history", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `[
			{"ciudad": "Lima", "temperatura": 18.4, "descripcion": "nublado", "fecha": "2025-06-10 09:30:00"},
			{"ciudad": "Cusco", "temperatura": 7, "descripcion": "despejado", "fecha": "not a date"}
		]`)
	})

	records, err := client.GetHistory(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Lima", records[0].City)
	assert.Equal(t, 18.4, records[0].TempC)
	assert.Equal(t, time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC), records[0].Date)
	assert.True(t, records[1].Date.IsZero())
}

func TestClient_GetBasicAdvice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ai-advice/Lima", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"consejo": "Lleva paraguas"}`)
	})

	resp, err := client.GetBasicAdvice(context.Background(), "tok", "Lima")

	require.NoError(t, err)
	assert.Equal(t, "Lleva paraguas", resp.Advice)
	assert.Empty(t, resp.AccessToken)
}

func TestClient_GetOutfitAdvice_Multipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ai-outfit", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Lima", r.FormValue("ciudad"))
		files := r.MultipartForm.File["imagenes"]
		require.Len(t, files, 2)
		assert.Equal(t, "camisa.jpg", files[0].Filename)
		assert.Equal(t, "image/jpeg", files[0].Header.Get("Content-Type"))
		f, err := files[1].Open()
		require.NoError(t, err)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)

		writeJSON(t, w, http.StatusOK, `{"consejo": "Usa la camisa", "access_token": "rotated"}`)
	})

	resp, err := client.GetOutfitAdvice(context.Background(), "tok", ports.OutfitAdviceParams{
		City: "Lima",
		Images: []ports.ImageFile{
			{Name: "camisa.jpg", ContentType: "image/jpeg", Data: []byte("jpg-bytes")},
			{Name: "pantalon.png", ContentType: "image/png", Data: []byte("png-bytes")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Usa la camisa", resp.Advice)
	assert.Equal(t, "rotated", resp.AccessToken)
}

func TestClient_GetTravelAdvice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"ciudad_destino": "Madrid",
			"fecha_inicio":   "2025-07-01",
			"fecha_fin":      "2025-07-05",
		}, body)
		writeJSON(t, w, http.StatusOK, `{"consejo": "Empaca ligero", "access_token": "rotated"}`)
	})

	resp, err := client.GetTravelAdvice(context.Background(), "tok", ports.TravelAdviceParams{
		Destination: "Madrid", StartDate: "2025-07-01", EndDate: "2025-07-05",
	})

	require.NoError(t, err)
	assert.Equal(t, "Empaca ligero", resp.Advice)
}

func TestClient_SavePreferencesAndUpgrade(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		switch r.URL.Path {
		case "/api/user/preferences":
			assert.Equal(t, "casual", body["estilo"])
			writeJSON(t, w, http.StatusOK, `{"mensaje": "Preferencias guardadas con éxito", "access_token": "t1"}`)
		case "/api/user/upgrade":
			assert.Equal(t, "pro", body["plan"])
			writeJSON(t, w, http.StatusOK, `{"mensaje": "¡Felicidades! Has actualizado al plan Pro", "access_token": "t2"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	ctx := context.Background()

	prefs, err := client.SavePreferences(ctx, "tok", map[string]string{"estilo": "casual"})
	require.NoError(t, err)
	assert.Equal(t, "t1", prefs.AccessToken)

	upgrade, err := client.UpgradePlan(ctx, "tok", "pro")
	require.NoError(t, err)
	assert.Equal(t, "t2", upgrade.AccessToken)
}

func TestClient_GetOutfitHistory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `[{"city": "Lima", "advice": "Chaqueta", "date": "2025-06-10T08:15:30.123456"}]`)
	})

	records, err := client.GetOutfitHistory(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Chaqueta", records[0].Advice)
	assert.Equal(t, 2025, records[0].Date.Year())
	assert.Equal(t, 8, records[0].Date.Hour())
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{"BadRequest", http.StatusBadRequest, `{"error": "Plan no válido"}`, errors.IsValidationError, "Plan no válido"},
		{"Conflict", http.StatusConflict, `{"error": "El correo electrónico ya está en uso"}`, errors.IsValidationError, "El correo electrónico ya está en uso"},
		{"Unauthorized", http.StatusUnauthorized, `{"msg": "Token has expired"}`, errors.IsUnauthorizedError, "Ciudad no encontrada o error en el servidor."},
		{"Forbidden", http.StatusForbidden, `{"error": "Has alcanzado el límite"}`, errors.IsForbiddenError, "Has alcanzado el límite"},
		{"NotFound", http.StatusNotFound, `{"error": "No se pudo obtener el clima. Código: 404"}`, errors.IsNotFoundError, "No se pudo obtener el clima. Código: 404"},
		{"ServerError", http.StatusInternalServerError, `<html>boom</html>`, errors.IsExternalAPIError, "Ciudad no encontrada o error en el servidor."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			})

			_, err := client.GetWeather(context.Background(), "tok", "Lima")

			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
			assert.Equal(t, tt.message, errors.UserMessage(err))
		})
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"consejo": `)
	})

	_, err := client.GetBasicAdvice(context.Background(), "tok", "Lima")

	assert.True(t, errors.IsExternalAPIError(err))
	assert.Equal(t, "No se pudo generar el consejo.", errors.UserMessage(err))
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client, err := NewClient(ClientParams{
		Config: ports.BackendConfig{BaseURL: server.URL, Timeout: time.Second},
		Logger: setupLoggerMock(t),
	})
	require.NoError(t, err)

	_, err = client.GetHistory(context.Background(), "tok")
	assert.True(t, errors.IsExternalAPIError(err))

	assert.Error(t, client.Ping(context.Background()))
}

func TestClient_Ping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assert.NoError(t, client.Ping(context.Background()))
}

func TestClient_CanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetHistory(ctx, "tok")

	assert.Error(t, err)
}
