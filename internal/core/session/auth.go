package session

import (
	"context"
	"fmt"
	"strings"

	"guardianclima.app/internal/core/plan"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
	"guardianclima.app/pkg/validation"
)

// LoginRequest represents the credentials of the login form
type LoginRequest struct {
	Email    string
	Password string
}

// RegisterRequest represents the fields of the registration form
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

func (r *LoginRequest) validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || r.Password == "" {
		return errors.NewValidationError("El correo y la contraseña son obligatorios.")
	}
	if !validation.IsValidEmail(r.Email) {
		return errors.NewValidationError("El correo electrónico no es válido.")
	}
	return nil
}

func (r *RegisterRequest) validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return errors.NewValidationError("El nombre de usuario es obligatorio.")
	}
	login := LoginRequest{Email: r.Email, Password: r.Password}
	if err := login.validate(); err != nil {
		return err
	}
	r.Email = login.Email
	return nil
}

// Login authenticates against the backend and adopts the returned token. On
// success the history is refreshed from the server.
func (s *Store) Login(ctx context.Context, req LoginRequest) error {
	if err := req.validate(); err != nil {
		return s.refuse(ctx, FlowLogin, err)
	}

	s.mu.Lock()
	ticket, err := s.auth.Start()
	epoch := s.epoch
	s.mu.Unlock()
	if err != nil {
		return s.refuse(ctx, FlowLogin, err)
	}

	s.logger.Debug("Logging in", ports.F("email", req.Email))
	resp, err := s.backend.Login(ctx, ports.LoginParams{Email: req.Email, Password: req.Password})

	c := completion[string]{flow: FlowLogin, epoch: epoch, op: &s.auth, ticket: ticket, err: err, public: true}
	if err == nil {
		if resp.AccessToken == "" {
			c.err = errors.NewExternalAPIError("Error en el inicio de sesión.", fmt.Errorf("login response carries no token"))
		}
		c.token = resp.AccessToken
		c.onSuccess = func() { s.requested = "" }
	}

	if err := complete(ctx, s, c); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s.logger.Info("User logged in", ports.F("view", s.View()))
	s.refreshHistoryAfterLogin(ctx)
	return nil
}

// Register creates the account and then logs in with the same credentials.
// Neither step is retried. The backend's welcome message is returned.
func (s *Store) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if err := req.validate(); err != nil {
		return "", s.refuse(ctx, FlowRegister, err)
	}

	s.mu.Lock()
	ticket, err := s.auth.Start()
	epoch := s.epoch
	s.mu.Unlock()
	if err != nil {
		return "", s.refuse(ctx, FlowRegister, err)
	}

	resp, err := s.backend.Register(ctx, ports.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})

	c := completion[string]{flow: FlowRegister, epoch: epoch, op: &s.auth, ticket: ticket, err: err, public: true}
	if err == nil {
		c.result = resp.Message
	}
	if err := complete(ctx, s, c); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	s.logger.Info("Account registered", ports.F("username", req.Username))
	return resp.Message, s.Login(ctx, LoginRequest{Email: req.Email, Password: req.Password})
}

// Logout clears the credential and every piece of session data. It is
// idempotent. Requests still in flight land nowhere.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.logoutLocked()
	s.mu.Unlock()

	s.syncToken(ctx)
	s.logger.Info("Session closed")
}

// RestoreSession adopts a previously persisted token. An undecodable or
// expired token ends in the same state as Logout.
func (s *Store) RestoreSession(ctx context.Context) error {
	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	token, err := s.tokens.Load(ctx)
	if err != nil {
		if errors.IsNotFoundError(err) {
			s.logger.Debug("No stored session token")
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return nil
	}
	err = s.adoptTokenLocked(token)
	if err == nil {
		s.requested = ""
		// the stored value is already current
		s.tokenDirty = false
	}
	s.mu.Unlock()

	if err != nil {
		s.syncToken(ctx)
		s.metrics.RecordForcedLogout(ctx, "invalid_token")
		s.logger.Warn("Stored session token rejected", ports.F("error", err))
		return nil
	}

	s.logger.Info("Session restored", ports.F("view", s.View()))
	s.refreshHistoryAfterLogin(ctx)
	return nil
}

// UpgradePlan switches the user to a paid plan and adopts the reissued token
func (s *Store) UpgradePlan(ctx context.Context, target string) (string, error) {
	p, ok := plan.Parse(target)
	if !ok || !plan.IsUpgradeTarget(p) {
		return "", s.refuse(ctx, FlowUpgrade, errors.NewValidationError("Plan no válido. Elige 'premium' o 'pro'."))
	}

	s.mu.Lock()
	_, token, err := s.requireUserLocked()
	if err != nil {
		s.mu.Unlock()
		return "", s.refuse(ctx, FlowUpgrade, err)
	}
	ticket, err := s.upgrade.Start()
	epoch := s.epoch
	s.mu.Unlock()
	if err != nil {
		return "", s.refuse(ctx, FlowUpgrade, err)
	}

	resp, err := s.backend.UpgradePlan(ctx, token, p.String())

	c := completion[string]{flow: FlowUpgrade, epoch: epoch, op: &s.upgrade, ticket: ticket, err: err}
	if err == nil {
		c.result = resp.Message
		c.token = resp.AccessToken
		c.onSuccess = func() { s.requested = ViewMain }
	}
	if err := complete(ctx, s, c); err != nil {
		return "", fmt.Errorf("upgrade plan: %w", err)
	}

	s.logger.Info("Plan upgraded", ports.F("plan", p.String()))
	return resp.Message, nil
}

func (s *Store) refreshHistoryAfterLogin(ctx context.Context) {
	if err := s.RefreshHistory(ctx); err != nil {
		s.logger.Warn("Failed to load history after login", ports.F("error", err))
	}
}
