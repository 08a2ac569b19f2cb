// Package session owns the client session: who is logged in, which screen is
// active and the state of every request flow.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"guardianclima.app/internal/core/async"
	"guardianclima.app/internal/core/plan"
	"guardianclima.app/internal/core/preferences"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// Flow names used for metrics and logs
const (
	FlowLogin         = "login"
	FlowRegister      = "register"
	FlowWeather       = "weather"
	FlowHistory       = "history"
	FlowBasicAdvice   = "basic_advice"
	FlowOutfitAdvice  = "outfit_advice"
	FlowTravelAdvice  = "travel_advice"
	FlowOutfitHistory = "outfit_history"
	FlowUpgrade       = "upgrade"
	FlowPreferences   = "preferences"
)

const (
	outcomeSuccess   = "success"
	outcomeFailure   = "failure"
	outcomeRefused   = "refused"
	outcomeDiscarded = "discarded"
)

// ErrSessionEnded is returned when the session changed while a request was in flight
var ErrSessionEnded = errors.NewUnauthorizedError("La sesión terminó antes de recibir la respuesta.")

// Store is the single source of truth of the session. It is safe for
// concurrent use. The mutex is never held across backend or storage calls.
type Store struct {
	backend ports.Backend
	tokens  ports.TokenStore
	decoder ports.TokenDecoder
	metrics ports.MetricsCollector
	logger  ports.Logger
	clock   ports.Clock
	limits  plan.Limits

	mu         sync.Mutex
	id         string
	epoch      uint64
	token      string
	tokenExp   time.Time
	tokenDirty bool
	user       *User
	requested  ViewName

	auth          async.Op[string]
	weather       async.Op[*WeatherResult]
	history       async.Op[[]HistoryEntry]
	basicAdvice   async.Op[string]
	outfitAdvice  async.Op[*OutfitResult]
	travelAdvice  async.Op[string]
	outfitHistory async.Op[[]OutfitHistoryEntry]
	upgrade       async.Op[string]
	prefs         async.Op[string]

	selectedImages []ports.ImageFile
	wizard         *preferences.Wizard

	// serialises writes to the token store
	persistMu sync.Mutex
}

type Dependencies struct {
	Backend ports.Backend
	Tokens  ports.TokenStore
	Decoder ports.TokenDecoder
	Config  ports.ConfigProvider
	Metrics ports.MetricsCollector
	Logger  ports.Logger
	Clock   ports.Clock
}

func NewStore(deps Dependencies) (*Store, error) {
	if deps.Backend == nil {
		return nil, errors.NewValidationError("backend is required")
	}
	if deps.Tokens == nil {
		return nil, errors.NewValidationError("token store is required")
	}
	if deps.Decoder == nil {
		return nil, errors.NewValidationError("token decoder is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	gating := deps.Config.GetGatingConfig()

	return &Store{
		backend: deps.Backend,
		tokens:  deps.Tokens,
		decoder: deps.Decoder,
		metrics: deps.Metrics,
		logger:  deps.Logger,
		clock:   clock,
		limits: plan.Limits{
			FreeOutfitUses:   gating.FreeOutfitUses,
			FreeTravelUses:   gating.FreeTravelUses,
			FreeHistoryLimit: gating.FreeHistoryLimit,
		},
		id:     uuid.NewString(),
		wizard: preferences.NewWizard(),
	}, nil
}

// Limits returns the free-plan allowances in force
func (s *Store) Limits() plan.Limits {
	return s.limits
}

// Snapshot is a consistent, read-only copy of the session
type Snapshot struct {
	SessionID      string
	View           ViewName
	User           *User
	Auth           async.State[string]
	Weather        async.State[*WeatherResult]
	History        async.State[[]HistoryEntry]
	BasicAdvice    async.State[string]
	OutfitAdvice   async.State[*OutfitResult]
	TravelAdvice   async.State[string]
	OutfitHistory  async.State[[]OutfitHistoryEntry]
	Upgrade        async.State[string]
	Preferences    async.State[string]
	SelectedImages []ports.ImageFile
	Wizard         preferences.Page
	Today          time.Time
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *User
	if s.user != nil {
		u := *s.user
		user = &u
	}

	history := s.history.Snapshot()
	history.Result = append([]HistoryEntry(nil), history.Result...)
	outfits := s.outfitHistory.Snapshot()
	outfits.Result = append([]OutfitHistoryEntry(nil), outfits.Result...)

	return Snapshot{
		SessionID:      s.id,
		View:           Route(RouteInput{User: s.user, Requested: s.requested}),
		User:           user,
		Auth:           s.auth.Snapshot(),
		Weather:        s.weather.Snapshot(),
		History:        history,
		BasicAdvice:    s.basicAdvice.Snapshot(),
		OutfitAdvice:   s.outfitAdvice.Snapshot(),
		TravelAdvice:   s.travelAdvice.Snapshot(),
		OutfitHistory:  outfits,
		Upgrade:        s.upgrade.Snapshot(),
		Preferences:    s.prefs.Snapshot(),
		SelectedImages: append([]ports.ImageFile(nil), s.selectedImages...),
		Wizard:         s.wizard.Current(),
		Today:          s.clock(),
	}
}

// View returns the screen the router currently selects
func (s *Store) View() ViewName {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Route(RouteInput{User: s.user, Requested: s.requested})
}

// Navigate records an explicit navigation request and returns the view the
// router resolves it to.
func (s *Store) Navigate(view ViewName) (ViewName, error) {
	if _, err := ParseViewName(string(view)); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requested = view
	return Route(RouteInput{User: s.user, Requested: s.requested}), nil
}

// adoptTokenLocked replaces the credential and re-derives the user. A token
// that does not decode to a complete, unexpired user forces a logout.
func (s *Store) adoptTokenLocked(token string) error {
	claims, err := s.decoder.Decode(token, s.clock())
	var user *User
	if err == nil {
		user, err = UserFromClaims(claims)
	}
	if err != nil {
		s.logoutLocked()
		return errors.NewTokenError("session token rejected", err)
	}

	// a different user starts a new epoch so requests of the previous one land nowhere
	if s.user == nil || s.user.ID != user.ID {
		if s.user != nil {
			s.resetSessionDataLocked()
		}
		s.epoch++
	}

	s.token = token
	s.tokenExp = claims.ExpiresAt
	s.tokenDirty = true
	s.user = user
	return nil
}

func (s *Store) logoutLocked() {
	s.epoch++
	s.id = uuid.NewString()
	s.token = ""
	s.tokenExp = time.Time{}
	s.tokenDirty = true
	s.user = nil
	s.requested = ViewAuth
	s.auth.Reset()
	s.upgrade.Reset()
	s.prefs.Reset()
	s.resetSessionDataLocked()
}

func (s *Store) resetSessionDataLocked() {
	s.weather.Reset()
	s.history.Reset()
	s.basicAdvice.Reset()
	s.outfitAdvice.Reset()
	s.travelAdvice.Reset()
	s.outfitHistory.Reset()
	s.selectedImages = nil
	s.wizard = preferences.NewWizard()
}

// syncToken brings the token store in line with the in-memory credential.
// Writes are serialised so a logout can never be overtaken by an older save.
func (s *Store) syncToken(ctx context.Context) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	if !s.tokenDirty {
		s.mu.Unlock()
		return
	}
	token, expiresAt := s.token, s.tokenExp
	s.tokenDirty = false
	s.mu.Unlock()

	var err error
	if token == "" {
		err = s.tokens.Clear(ctx)
	} else {
		err = s.tokens.Save(ctx, token, expiresAt)
	}
	if err != nil {
		s.logger.Warn("Failed to persist session token", ports.F("error", err))
	}
}

// requireUserLocked returns the current credential or an unauthorized error
func (s *Store) requireUserLocked() (*User, string, error) {
	if s.user == nil || s.token == "" {
		return nil, "", errors.NewUnauthorizedError("inicia sesión para continuar")
	}
	return s.user, s.token, nil
}

// completion describes the end of a request started under epoch
type completion[T any] struct {
	flow      string
	epoch     uint64
	op        *async.Op[T]
	ticket    async.Ticket
	token     string
	result    T
	err       error
	onSuccess func()
	always    func(err error)
	// public flows do not carry a credential, so a 401 is an ordinary failure
	public bool
}

// complete lands a response in the store. Stale responses are dropped, a
// rotated token is adopted before anything else, and a 401 ends the session.
func complete[T any](ctx context.Context, s *Store, c completion[T]) error {
	err := s.completeLocked(func() error {
		if s.epoch != c.epoch {
			return ErrSessionEnded
		}

		if c.err != nil {
			if !c.public && errors.IsUnauthorizedError(c.err) {
				s.logoutLocked()
				return c.err
			}
			c.op.Fail(c.ticket, c.err)
			if c.always != nil {
				c.always(c.err)
			}
			return c.err
		}

		if c.token != "" {
			if err := s.adoptTokenLocked(c.token); err != nil {
				return err
			}
		}

		c.op.Succeed(c.ticket, c.result)
		if c.always != nil {
			c.always(nil)
		}
		if c.onSuccess != nil {
			c.onSuccess()
		}
		return nil
	})

	s.syncToken(ctx)

	switch {
	case err == nil:
		s.metrics.RecordFlowOutcome(ctx, c.flow, outcomeSuccess)
	case err == ErrSessionEnded:
		s.metrics.RecordFlowOutcome(ctx, c.flow, outcomeDiscarded)
		s.logger.Debug("Discarded response for ended session", ports.F("flow", c.flow))
	case !c.public && errors.IsUnauthorizedError(err):
		s.metrics.RecordForcedLogout(ctx, "unauthorized")
		s.logger.Warn("Backend rejected credentials, session closed", ports.F("flow", c.flow))
	case errors.IsTokenError(err):
		s.metrics.RecordForcedLogout(ctx, "invalid_token")
		s.logger.Warn("Rotated token rejected, session closed", ports.F("flow", c.flow), ports.F("error", err))
	default:
		s.metrics.RecordFlowOutcome(ctx, c.flow, outcomeFailure)
		s.logger.Debug("Request failed", ports.F("flow", c.flow), ports.F("error", err))
	}
	return err
}

func (s *Store) completeLocked(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// refuse records a request rejected before reaching the backend
func (s *Store) refuse(ctx context.Context, flow string, err error) error {
	s.metrics.RecordFlowOutcome(ctx, flow, outcomeRefused)
	return err
}
