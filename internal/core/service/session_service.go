package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/localspot/directory-gateway/internal/core/domain"
	"github.com/localspot/directory-gateway/internal/core/ports"
)

// SessionService holds the process-wide session and mediates between the
// auth API and the credential store. It is the only writer of session state.
//
// Login and Register are deliberately not serialized against each other: two
// in-flight calls race on the final state assignment and the last one to
// resolve wins. The mutex only keeps individual transitions atomic.
type SessionService struct {
	auth   ports.AuthAPI
	store  ports.CredentialStore
	logger zerolog.Logger

	hydrateOnce sync.Once

	mu    sync.Mutex
	state domain.SessionState
	creds *domain.Credentials
}

func NewSessionService(auth ports.AuthAPI, store ports.CredentialStore, logger zerolog.Logger) *SessionService {
	return &SessionService{
		auth:   auth,
		store:  store,
		logger: logger,
		state:  domain.SessionHydrating,
	}
}

// Hydrate restores the session from the credential store, exactly once per
// process. A restored pair is adopted verbatim; the token is not validated
// against the server, so a revoked token is only discovered when the next
// authenticated upstream call is rejected.
func (s *SessionService) Hydrate(ctx context.Context) {
	s.hydrateOnce.Do(func() {
		creds, err := s.store.Load(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("credential store unreadable, starting anonymous")
			s.transition(domain.SessionAnonymous, nil)
			return
		}
		if !creds.Complete() {
			s.transition(domain.SessionAnonymous, nil)
			return
		}
		s.logger.Info().Str("email", creds.User.Email).Str("role", creds.User.Role).Msg("session restored")
		s.transition(domain.SessionAuthenticated, creds)
	})
}

// Login authenticates against the remote API and persists the credential
// pair. On any failure the session settles back to anonymous and the error
// is returned to the caller for display.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" {
		return domain.NewValidationError("email", "is required")
	}
	if password == "" {
		return domain.NewValidationError("password", "is required")
	}

	s.transition(domain.SessionAuthenticating, s.currentCreds())

	creds, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.transition(domain.SessionAnonymous, nil)
		return err
	}
	return s.adopt(ctx, creds)
}

// Register creates an account and treats success as an immediate login.
// The confirmation password is checked here; a mismatch never reaches the
// network.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) error {
	if err := validateRegister(input); err != nil {
		return err
	}

	s.transition(domain.SessionAuthenticating, s.currentCreds())

	creds, err := s.auth.Register(ctx, input)
	if err != nil {
		s.transition(domain.SessionAnonymous, nil)
		return err
	}
	return s.adopt(ctx, creds)
}

// Logout is purely local: it clears the store and the in-memory pair and
// cannot fail. A store error is logged and swallowed; the session is
// anonymous regardless.
func (s *SessionService) Logout(ctx context.Context) {
	s.transition(domain.SessionAnonymous, nil)
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear credential store on logout")
	}
}

// Snapshot returns a point-in-time view of the session.
func (s *SessionService) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.SessionSnapshot{State: s.state}
	if s.creds != nil {
		snap.Token = s.creds.Token
		snap.User = s.creds.User
	}
	return snap
}

// Token returns the current bearer token, or "" when anonymous.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.Token
}

// adopt persists and installs a credential pair returned by the auth API.
func (s *SessionService) adopt(ctx context.Context, creds *domain.Credentials) error {
	if !creds.Complete() {
		s.transition(domain.SessionAnonymous, nil)
		return domain.ErrMalformedResponse
	}
	if err := s.store.Save(ctx, creds.Token, creds.User); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist credentials")
		s.transition(domain.SessionAnonymous, nil)
		return err
	}
	s.logger.Info().Str("email", creds.User.Email).Str("role", creds.User.Role).Msg("authenticated")
	s.transition(domain.SessionAuthenticated, creds)
	return nil
}

// transition is the single place session state changes. User and token move
// together: an authenticated state always carries a complete pair, every
// other state carries none.
func (s *SessionService) transition(state domain.SessionState, creds *domain.Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state != domain.SessionAuthenticated && state != domain.SessionAuthenticating {
		creds = nil
	}
	s.state = state
	s.creds = creds
}

func (s *SessionService) currentCreds() *domain.Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds
}

func validateRegister(input ports.RegisterInput) error {
	switch {
	case strings.TrimSpace(input.Email) == "":
		return domain.NewValidationError("email", "is required")
	case input.Password == "":
		return domain.NewValidationError("password", "is required")
	case strings.TrimSpace(input.FirstName) == "":
		return domain.NewValidationError("firstName", "is required")
	case strings.TrimSpace(input.LastName) == "":
		return domain.NewValidationError("lastName", "is required")
	case input.Password != input.ConfirmPassword:
		return domain.NewValidationError("confirmPassword", "does not match password")
	}
	return nil
}
