package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"guardianclima.app/internal/core/plan"
	"guardianclima.app/internal/core/session"
	"guardianclima.app/internal/mocks"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

var testNow = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

type testServer struct {
	router  *gin.Engine
	backend *mocks.Backend
	tokens  *mocks.TokenStore
	decoder *mocks.TokenDecoder
	health  *mocks.SystemHealthChecker
}

func newTestServer(t *testing.T, cfg ServerConfig) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	backend := mocks.NewBackend(t)
	tokens := mocks.NewTokenStore(t)
	decoder := mocks.NewTokenDecoder(t)
	config := mocks.NewConfigProvider(t)
	metrics := mocks.NewMetricsCollector(t)
	logger := mocks.NewLogger(t)
	health := mocks.NewSystemHealthChecker(t)

	config.EXPECT().GetGatingConfig().Return(ports.GatingConfig{
		FreeOutfitUses:   3,
		FreeTravelUses:   1,
		FreeHistoryLimit: 5,
	})
	metrics.EXPECT().RecordFlowOutcome(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().RecordForcedLogout(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	store, err := session.NewStore(session.Dependencies{
		Backend: backend,
		Tokens:  tokens,
		Decoder: decoder,
		Config:  config,
		Metrics: metrics,
		Logger:  logger,
		Clock:   func() time.Time { return testNow },
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:              cfg,
		Session:             store,
		SystemHealthChecker: health,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("guardianclima_backend_requests_total 0\n"))
		}),
		Logger: logger,
	})
	require.NoError(t, err)

	return &testServer{
		router:  server.GetRouter(),
		backend: backend,
		tokens:  tokens,
		decoder: decoder,
		health:  health,
	}
}

func (ts *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// login authenticates through the HTTP surface with an empty server history
func (ts *testServer) login(t *testing.T, p plan.Plan, prefsSaved bool) {
	t.Helper()
	claims := &ports.Claims{
		Subject:    "1",
		Username:   "ana",
		Plan:       string(p),
		PrefsSaved: prefsSaved,
		ExpiresAt:  testNow.Add(time.Hour),
	}
	ts.backend.EXPECT().Login(mock.Anything, ports.LoginParams{Email: "ana@example.com", Password: "secret"}).
		Return(&ports.MessageResponse{AccessToken: "tok"}, nil).Once()
	ts.decoder.EXPECT().Decode("tok", testNow).Return(claims, nil).Maybe()
	ts.tokens.EXPECT().Save(mock.Anything, "tok", claims.ExpiresAt).Return(nil).Maybe()
	ts.tokens.EXPECT().Clear(mock.Anything).Return(nil).Maybe()
	ts.backend.EXPECT().GetHistory(mock.Anything, "tok").Return([]ports.HistoryRecord{}, nil).Maybe()

	w := ts.do(http.MethodPost, "/api/auth/login", LoginRequest{Email: "ana@example.com", Password: "secret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) SessionResponse {
	t.Helper()
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestNewHTTPServerAdapter_MissingDependencies(t *testing.T) {
	server, err := NewHTTPServerAdapter(ServerOptions{})

	assert.Nil(t, server)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "session use case is required")
}

func TestServer_GetSession_Landing(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})

	w := ts.do(http.MethodGet, "/api/session", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	assert.Equal(t, session.ViewLanding, resp.Screen.View)
	require.NotNil(t, resp.Screen.Landing)
	assert.Len(t, resp.Screen.Landing.Plans, len(plan.Catalog()))
	assert.NotEmpty(t, resp.Screen.SessionID)
}

func TestServer_GetPlans(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})

	w := ts.do(http.MethodGet, "/api/plans", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"premium"`)
}

func TestServer_Navigate(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})

	w := ts.do(http.MethodPost, "/api/navigate", NavigateRequest{View: "pricing"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.ViewPricing, decodeSession(t, w).Screen.View)

	w = ts.do(http.MethodPost, "/api/navigate", NavigateRequest{View: "settings"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Vista desconocida.", resp.Error)
	require.NotNil(t, resp.Screen)
	assert.Equal(t, session.ViewPricing, resp.Screen.View)
}

func TestServer_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, true)

		resp := decodeSession(t, ts.do(http.MethodGet, "/api/session", nil))

		assert.Equal(t, session.ViewMain, resp.Screen.View)
		require.NotNil(t, resp.Screen.Main)
		assert.Equal(t, "Hola, ana", resp.Screen.Main.Greeting)
		assert.Equal(t, "free", resp.Screen.Main.Plan.Plan)
	})

	t.Run("PrefsNotSaved", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, false)

		resp := decodeSession(t, ts.do(http.MethodGet, "/api/session", nil))

		assert.Equal(t, session.ViewPersonalization, resp.Screen.View)
		require.NotNil(t, resp.Screen.Personalization)
		assert.Equal(t, "estilo", resp.Screen.Personalization.Page.Question)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.backend.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, errors.NewUnauthorizedError("Credenciales inválidas")).Once()

		w := ts.do(http.MethodPost, "/api/auth/login", LoginRequest{Email: "ana@example.com", Password: "bad"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Credenciales inválidas", resp.Error)
		assert.Equal(t, "UNAUTHORIZED_ERROR", resp.Type)
	})

	t.Run("MissingFields", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})

		w := ts.do(http.MethodPost, "/api/auth/login", LoginRequest{Email: "ana@example.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "El correo y la contraseña son obligatorios.", decodeError(t, w).Error)
	})
}

func TestServer_Register(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})
	claims := &ports.Claims{Subject: "30", Username: "ana", Plan: "free", ExpiresAt: testNow.Add(time.Hour)}
	ts.backend.EXPECT().Register(mock.Anything, ports.RegisterParams{
		Username: "ana", Email: "ana@example.com", Password: "secret",
	}).Return(&ports.MessageResponse{Message: "Usuario creado exitosamente"}, nil).Once()
	ts.backend.EXPECT().Login(mock.Anything, ports.LoginParams{Email: "ana@example.com", Password: "secret"}).
		Return(&ports.MessageResponse{AccessToken: "tok-new"}, nil).Once()
	ts.decoder.EXPECT().Decode("tok-new", testNow).Return(claims, nil).Maybe()
	ts.tokens.EXPECT().Save(mock.Anything, "tok-new", claims.ExpiresAt).Return(nil).Once()
	ts.backend.EXPECT().GetHistory(mock.Anything, "tok-new").Return(nil, nil).Maybe()

	w := ts.do(http.MethodPost, "/api/auth/register", RegisterRequest{
		Username: "ana", Email: "ana@example.com", Password: "secret",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decodeSession(t, w)
	assert.Equal(t, "Usuario creado exitosamente", resp.Message)
	assert.Equal(t, session.ViewPersonalization, resp.Screen.View)
	assert.Equal(t, "ana", resp.Screen.Personalization.Username)
}

func TestServer_Logout(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})
	ts.login(t, plan.Pro, true)

	w := ts.do(http.MethodPost, "/api/auth/logout", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	assert.Equal(t, session.ViewAuth, resp.Screen.View)
	require.NotNil(t, resp.Screen.Auth)
}

func TestServer_Restore_NoToken(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})
	ts.tokens.EXPECT().Load(mock.Anything).Return("", errors.NewNotFoundError("no token")).Once()

	w := ts.do(http.MethodPost, "/api/auth/restore", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.ViewLanding, decodeSession(t, w).Screen.View)
}

func TestServer_SearchWeather(t *testing.T) {
	t.Run("QueryParameter", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, true)
		ts.backend.EXPECT().GetWeather(mock.Anything, "tok", "Lima").Return(&ports.WeatherPayload{
			Name:        "Lima",
			Country:     "PE",
			Description: "cielo claro",
			IconCode:    "01d",
			TempC:       24.4,
			HumidityPct: 70,
		}, nil).Once()

		w := ts.do(http.MethodGet, "/api/weather?city=Lima", nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		main := decodeSession(t, w).Screen.Main
		require.NotNil(t, main)
		require.NotNil(t, main.Weather)
		assert.Equal(t, "Lima", main.Weather.City)
		assert.Equal(t, "https://openweathermap.org/img/wn/01d@2x.png", main.Weather.IconURL)
		require.Len(t, main.History.Items, 1)
		assert.Equal(t, 24, main.History.Items[0].TempC)
	})

	t.Run("JSONBody", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, true)
		ts.backend.EXPECT().GetWeather(mock.Anything, "tok", "Cusco").
			Return(&ports.WeatherPayload{Name: "Cusco", TempC: 8}, nil).Once()

		w := ts.do(http.MethodPost, "/api/weather", WeatherRequest{City: "Cusco"})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Cusco", decodeSession(t, w).Screen.Main.Weather.City)
	})

	t.Run("RejectedCredentialEndsSession", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, true)
		ts.backend.EXPECT().GetWeather(mock.Anything, "tok", "Lima").
			Return(nil, errors.NewUnauthorizedError("Token has expired")).Once()

		w := ts.do(http.MethodGet, "/api/weather?city=Lima", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeError(t, w)
		require.NotNil(t, resp.Screen)
		assert.Equal(t, session.ViewAuth, resp.Screen.View)
	})

	t.Run("CityNotFound", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, true)
		ts.backend.EXPECT().GetWeather(mock.Anything, "tok", "Atlantis").
			Return(nil, errors.NewNotFoundError("Ciudad no encontrada o error en el servidor.")).Once()

		w := ts.do(http.MethodGet, "/api/weather?city=Atlantis", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Ciudad no encontrada o error en el servidor.", resp.Error)
		assert.Equal(t, "Ciudad no encontrada o error en el servidor.", resp.Screen.Main.SearchError)
	})
}

func TestServer_HideHistory(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})
	ts.login(t, plan.Free, true)
	ts.backend.EXPECT().GetWeather(mock.Anything, "tok", "Lima").
		Return(&ports.WeatherPayload{Name: "Lima", TempC: 20}, nil).Once()
	ts.do(http.MethodGet, "/api/weather?city=Lima", nil)

	w := ts.do(http.MethodDelete, "/api/history", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeSession(t, w).Screen.Main.History.Items)
}

func TestServer_UpgradePlan(t *testing.T) {
	t.Run("RejectsUnknownPlan", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, true)

		for _, target := range []string{"gold", "free", ""} {
			w := ts.do(http.MethodPost, "/api/plan/upgrade", UpgradeRequest{Plan: target})

			assert.Equal(t, http.StatusBadRequest, w.Code, target)
			assert.Equal(t, "Plan no válido.", decodeError(t, w).Error)
		}
	})

	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, true)
		ts.backend.EXPECT().UpgradePlan(mock.Anything, "tok", "pro").
			Return(&ports.MessageResponse{Message: "¡Felicidades! Has actualizado al plan Pro"}, nil).Once()

		w := ts.do(http.MethodPost, "/api/plan/upgrade", UpgradeRequest{Plan: "pro"})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "¡Felicidades! Has actualizado al plan Pro", decodeSession(t, w).Message)
	})
}

func multipartImages(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, contentType := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="images"; filename="`+name+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestServer_OutfitFlow(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})
	ts.login(t, plan.Free, true)
	ts.backend.EXPECT().GetWeather(mock.Anything, "tok", "Lima").
		Return(&ports.WeatherPayload{Name: "Lima", TempC: 18}, nil).Once()
	ts.do(http.MethodGet, "/api/weather?city=Lima", nil)

	body, contentType := multipartImages(t, map[string]string{"camisa.jpg": "image/jpeg"})
	req := httptest.NewRequest(http.MethodPost, "/api/advice/outfit/images", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"camisa.jpg"}, decodeSession(t, w).Screen.Main.Outfit.Selected)

	ts.backend.EXPECT().GetOutfitAdvice(mock.Anything, "tok", mock.MatchedBy(func(p ports.OutfitAdviceParams) bool {
		return p.City == "Lima" && len(p.Images) == 1 && p.Images[0].ContentType == "image/jpeg"
	})).Return(&ports.AdviceResponse{Advice: "Usa la camisa con una chaqueta ligera."}, nil).Once()

	w = ts.do(http.MethodPost, "/api/advice/outfit", OutfitRequest{})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	outfit := decodeSession(t, w).Screen.Main.Outfit
	assert.Equal(t, "Usa la camisa con una chaqueta ligera.", outfit.Advice)
	assert.Empty(t, outfit.Selected)
}

func TestServer_SelectOutfitImages_RejectsNonImages(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})
	ts.login(t, plan.Free, true)

	body, contentType := multipartImages(t, map[string]string{"notas.txt": "text/plain"})
	req := httptest.NewRequest(http.MethodPost, "/api/advice/outfit/images", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Error, "no es una imagen")
}

func TestServer_TravelAdvice_FreeLimitReached(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})
	claims := &ports.Claims{
		Subject: "1", Username: "ana", Plan: "free", PrefsSaved: true,
		AITravelUses: 1, ExpiresAt: testNow.Add(time.Hour),
	}
	ts.backend.EXPECT().Login(mock.Anything, mock.Anything).Return(&ports.MessageResponse{AccessToken: "used"}, nil).Once()
	ts.decoder.EXPECT().Decode("used", testNow).Return(claims, nil).Maybe()
	ts.tokens.EXPECT().Save(mock.Anything, "used", mock.Anything).Return(nil).Once()
	ts.backend.EXPECT().GetHistory(mock.Anything, "used").Return(nil, nil).Once()
	require.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/auth/login", LoginRequest{Email: "ana@example.com", Password: "secret"}).Code)

	w := ts.do(http.MethodPost, "/api/advice/travel", TravelRequest{
		Destination: "Cusco", StartDate: "2025-06-12", EndDate: "2025-06-15",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "PLAN_LIMIT_ERROR", resp.Type)
	assert.True(t, resp.Screen.Main.Travel.Locked)
	ts.backend.AssertNotCalled(t, "GetTravelAdvice", mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_Wizard(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})
	ts.login(t, plan.Free, false)

	w := ts.do(http.MethodPost, "/api/wizard/select", WizardSelectRequest{Question: "estilo", Option: "Elegante"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Elegante", decodeSession(t, w).Screen.Personalization.Page.Selected)

	w = ts.do(http.MethodPost, "/api/wizard/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeSession(t, w).Screen.Personalization.Page.Index)

	w = ts.do(http.MethodPost, "/api/wizard/previous", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decodeSession(t, w).Screen.Personalization.Page.Index)

	w = ts.do(http.MethodPost, "/api/wizard/select", WizardSelectRequest{Question: "estilo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Selecciona una opción.", decodeError(t, w).Error)
}

func TestServer_Health(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.health.EXPECT().CheckAll(mock.Anything).Return(map[string]ports.HealthStatus{
			"backend": {Component: "backend", Status: "healthy"},
			"storage": {Component: "storage", Status: "healthy"},
		}).Once()

		w := ts.do(http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})

	t.Run("Degraded", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.health.EXPECT().CheckAll(mock.Anything).Return(map[string]ports.HealthStatus{
			"backend": {Component: "backend", Status: "unhealthy", Error: "connection refused"},
		}).Once()

		w := ts.do(http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	})
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})

	w := ts.do(http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "guardianclima_backend_requests_total")
}

func TestServer_CORS(t *testing.T) {
	ts := newTestServer(t, ServerConfig{})

	req := httptest.NewRequest(http.MethodOptions, "/api/session", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "authorization")
}

func TestServer_RateLimitPerClient(t *testing.T) {
	ts := newTestServer(t, ServerConfig{RateLimit: 0.001, RateBurst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, ts.do(http.MethodGet, "/api/session", nil).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestServer_BasicAdvice(t *testing.T) {
	t.Run("RequiresWeather", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, true)

		w := ts.do(http.MethodPost, "/api/advice/basic", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Busca una ciudad antes de pedir un consejo.", decodeError(t, w).Error)
	})

	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t, ServerConfig{})
		ts.login(t, plan.Free, true)
		ts.backend.EXPECT().GetWeather(mock.Anything, "tok", "Lima").
			Return(&ports.WeatherPayload{Name: "Lima", TempC: 20}, nil).Once()
		ts.backend.EXPECT().GetBasicAdvice(mock.Anything, "tok", "Lima").
			Return(&ports.AdviceResponse{Advice: "Lleva una chaqueta ligera."}, nil).Once()
		ts.do(http.MethodGet, "/api/weather?city=Lima", nil)

		w := ts.do(http.MethodPost, "/api/advice/basic", nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Lleva una chaqueta ligera.", decodeSession(t, w).Screen.Main.BasicAdvice.Advice)
	})
}
