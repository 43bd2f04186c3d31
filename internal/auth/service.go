// Package auth tracks the active session and enforces the three-level
// role hierarchy. Gated operations take the session explicitly so that
// callers (and tests) are never coupled to process-wide state.
package auth

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "invtrack/internal/errors"
	"invtrack/internal/logger"
	"invtrack/internal/models"
	"invtrack/internal/store"
)

// Default administrator credentials, created only when the user table
// is empty at startup. A documented convenience, not a secure default.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Service handles authentication and user management.
type Service struct {
	store   *store.Store
	current *Session
}

// NewService creates an auth Service over the given store.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Bootstrap creates the default administrator account iff the user
// table is empty.
func (s *Service) Bootstrap() error {
	count, err := s.store.CountUsers()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if _, err := s.store.AddUser(DefaultAdminUsername, string(hash), models.RoleAdmin); err != nil {
		return err
	}

	logger.Get().Warnf("Default admin user created (%s/%s); change the password",
		DefaultAdminUsername, DefaultAdminPassword)
	return nil
}

// Login verifies the credentials and establishes a new session,
// discarding any prior one. A failed login leaves no session behind.
func (s *Service) Login(username, password string) (*Session, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	sess := &Session{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
	s.current = sess
	return sess, nil
}

// Logout clears the active session. Idempotent.
func (s *Service) Logout() {
	s.current = nil
}

// Current returns the active session, or nil when logged out.
func (s *Service) Current() *Session {
	return s.current
}

// HasPermission reports whether the session satisfies the required role
// under the strict hierarchy admin > manager > viewer. A nil session
// satisfies nothing.
func (s *Service) HasPermission(sess *Session, required models.Role) bool {
	if sess == nil {
		return false
	}
	if sess.Role == models.RoleAdmin {
		return true
	}
	if required == models.RoleAdmin {
		return false
	}
	return sess.Role.Level() >= required.Level()
}

// CreateUser registers a new account. Admin only.
func (s *Service) CreateUser(sess *Session, username, password string, role models.Role) (*models.User, error) {
	if !s.HasPermission(sess, models.RoleAdmin) {
		return nil, apperrors.ErrPermissionDenied
	}
	if username == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username and password are required")
	}
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	if _, err := s.store.GetUserByUsername(username); err == nil {
		return nil, apperrors.ErrDuplicateUsername
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return s.store.AddUser(username, string(hash), role)
}

// DeleteUser removes an account. Admin only; deleting the active
// session's own user is rejected to avoid self-lockout.
func (s *Service) DeleteUser(sess *Session, userID uint) error {
	if !s.HasPermission(sess, models.RoleAdmin) {
		return apperrors.ErrPermissionDenied
	}
	if sess != nil && sess.UserID == userID {
		return apperrors.ErrSelfDelete
	}
	return s.store.DeleteUser(userID)
}

// ListUsers returns every account. Admin only.
func (s *Service) ListUsers(sess *Session) ([]models.User, error) {
	if !s.HasPermission(sess, models.RoleAdmin) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.store.AllUsers()
}

// ChangePassword sets a new password. A user may change only their own
// password unless acting as admin.
func (s *Service) ChangePassword(sess *Session, userID uint, newPassword string) error {
	if !s.HasPermission(sess, models.RoleAdmin) && (sess == nil || sess.UserID != userID) {
		return apperrors.ErrPermissionDenied
	}
	if newPassword == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "password is required")
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	user.PasswordHash = string(hash)
	return s.store.UpdateUser(user)
}
