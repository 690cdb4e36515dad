// Package identity implements the account lifecycle against the identity
// provider seam: registration, sign-in, password-reset requests, sign-out
// and account deletion, with the result cached in the local session slot.
package identity

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	apperrors "github.com/lucasmrqs/go-tarefas-server/internal/errors"
	"github.com/lucasmrqs/go-tarefas-server/session"
	"github.com/lucasmrqs/go-tarefas-server/token"
	"github.com/lucasmrqs/go-tarefas-server/users"
)

// Repos holds all repository dependencies for the Service
type Repos struct {
	Users users.UserRepo // Remote identity provider's account store
}

// Service provides the account-lifecycle operations. Provider errors are
// mapped to the shared sentinels: ErrValidation, ErrInvalidCredentials,
// ErrAccountAlreadyExists, ErrNoActiveSession, ErrUnknown.
type Service struct {
	repos       Repos
	sessions    session.Store
	tokens      *token.Issuer
	resetSender ResetSender
	validator   *Validator
	log         zerolog.Logger
	nowTime     func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// NewService initializes a new Service with required dependencies.
func NewService(
	repos Repos,
	sessions session.Store,
	tokens *token.Issuer,
	resetSender ResetSender,
	log zerolog.Logger,
	options ...ServiceOption,
) (*Service, error) {
	if repos.Users == nil {
		return nil, errors.New("[NewService] Users repo is required")
	}
	if sessions == nil {
		return nil, errors.New("[NewService] session store is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewService] token issuer is required")
	}
	if resetSender == nil {
		return nil, errors.New("[NewService] reset sender is required")
	}

	s := &Service{
		repos:       repos,
		sessions:    sessions,
		tokens:      tokens,
		resetSender: resetSender,
		validator:   NewValidator(),
		log:         log,
		nowTime:     time.Now,
	}

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

// Register creates a new account and caches the resulting session.
// Mismatched or empty input fails locally before any provider call.
func (s *Service) Register(email, password, confirm string) (*session.Session, error) {
	if err := s.validator.ValidateRegistration(email, password, confirm); err != nil {
		return nil, err
	}

	if _, err := s.repos.Users.GetByEmail(email); err == nil {
		return nil, apperrors.Wrapf(apperrors.ErrAccountAlreadyExists, "[Service.Register] %s", email)
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Register] HashPassword")
	}

	user := &users.User{
		Email:        email,
		PasswordHash: hash,
		DateJoined:   s.nowTime(),
	}
	if err := s.repos.Users.Upsert(user); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUnknown, "[Service.Register] Upsert: %v", err)
	}

	return s.openSession(user)
}

// SignIn checks the credentials against the provider and caches the
// resulting session. Wrong password and unknown account both surface as
// ErrInvalidCredentials.
func (s *Service) SignIn(email, password string) (*session.Session, error) {
	if err := s.validator.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	user, err := s.repos.Users.GetByEmail(email)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidCredentials, "[Service.SignIn] %s", email)
	}
	if !users.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidCredentials, "[Service.SignIn] %s", email)
	}

	user.LastLogin = s.nowTime()
	if err := s.repos.Users.Upsert(user); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("record last login")
	}

	return s.openSession(user)
}

// RequestPasswordReset asks the provider to send a reset mail. The outcome
// is user-visible but not otherwise actionable.
func (s *Service) RequestPasswordReset(email string) error {
	if err := s.validator.ValidateEmail(email); err != nil {
		return err
	}
	if err := s.resetSender.SendReset(email); err != nil {
		return apperrors.Wrapf(apperrors.ErrUnknown, "[Service.RequestPasswordReset] %v", err)
	}
	return nil
}

// SignOut clears the local session slot only; server-side token
// invalidation is the provider's concern.
func (s *Service) SignOut() {
	s.sessions.Clear()
}

// DeleteAccount removes the provider record for the cached session's user
// and clears the slot. The user's tasks are left in place.
func (s *Service) DeleteAccount() error {
	sess := s.sessions.Load()
	if sess == nil {
		return apperrors.Wrapf(apperrors.ErrNoActiveSession, "[Service.DeleteAccount]")
	}

	if err := s.repos.Users.Delete(sess.Email); err != nil {
		return apperrors.Wrapf(apperrors.ErrUnknown, "[Service.DeleteAccount] Delete: %v", err)
	}

	s.sessions.Clear()
	s.log.Warn().Str("user_id", sess.UserID).Msg("account deleted; tasks owned by the user remain in the store")
	return nil
}

// CurrentSession returns the cached session, or nil when none exists. App
// start uses this as the sign-in shortcut.
func (s *Service) CurrentSession() *session.Session {
	return s.sessions.Load()
}

func (s *Service) openSession(user *users.User) (*session.Session, error) {
	raw, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.openSession] Issue")
	}

	sess := &session.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     raw,
		CreatedAt: s.nowTime(),
	}
	// Best effort: the store logs its own failures.
	s.sessions.Save(sess)
	return sess, nil
}
