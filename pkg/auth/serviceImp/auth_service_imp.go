package serviceImp

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cultivos/entities"
	"cultivos/pkg/apperr"
	repo "cultivos/pkg/auth/repository"
	"cultivos/pkg/auth/service"
)

type authSvc struct {
	r     repo.UserRepository
	admin string
	log   *zap.Logger
}

// NewAuthService protects the account named admin from edits and deletion.
func NewAuthService(r repo.UserRepository, admin string, log *zap.Logger) service.AuthService {
	return &authSvc{r: r, admin: admin, log: log}
}

func hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func isHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{apperr.ErrInvalidInput}, args...)...)
}

func normEmail(e *string) *string {
	if e == nil {
		return nil
	}
	v := strings.TrimSpace(*e)
	if v == "" {
		return nil
	}
	return &v
}

func (s *authSvc) Login(username, password string) (*entities.User, error) {
	u, err := s.r.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(apperr.FromDB(err), apperr.ErrNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if isHash(u.Password) {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return nil, service.ErrInvalidCredentials
		}
		return u, nil
	}

	// plaintext row from an older database: accept once, then rehash
	if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return nil, service.ErrInvalidCredentials
	}
	h, err := hash(password)
	if err != nil {
		return nil, err
	}
	if err := s.r.SetPassword(u.ID, h); err != nil {
		return nil, fmt.Errorf("upgrade password for %s: %w", u.Username, err)
	}
	u.Password = h
	s.log.Info("legacy password rehashed", zap.String("username", u.Username))
	return u, nil
}

func (s *authSvc) ListUsers() ([]entities.User, error) {
	out, err := s.r.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func (s *authSvc) CreateUser(in service.CreateUserInput) (*entities.User, error) {
	name := strings.TrimSpace(in.Username)
	if name == "" || in.Password == "" {
		return nil, invalid("username and password are required")
	}
	role := in.Role
	if role == "" {
		role = entities.RoleUser
	}
	if role != entities.RoleUser && role != entities.RoleAdmin {
		return nil, invalid("unknown role %q", role)
	}
	h, err := hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entities.User{Username: name, Password: h, Role: role, Email: normEmail(in.Email)}
	if err := s.r.Create(u); err != nil {
		return nil, fmt.Errorf("user %q: %w", name, apperr.FromDB(err))
	}
	s.log.Info("user created", zap.String("username", name), zap.String("role", role))
	return u, nil
}

func (s *authSvc) UpdateUser(username string, in service.UpdateUserInput) (*entities.User, error) {
	if username == s.admin {
		return nil, service.ErrProtectedUser
	}
	name := strings.TrimSpace(in.Username)
	if name == "" {
		return nil, invalid("username is required")
	}
	u, err := s.r.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, apperr.FromDB(err))
	}

	u.Username = name
	u.Email = normEmail(in.Email)
	if in.Password != "" {
		if u.Password, err = hash(in.Password); err != nil {
			return nil, err
		}
	}
	if err := s.r.Save(u); err != nil {
		return nil, fmt.Errorf("user %q: %w", name, apperr.FromDB(err))
	}
	s.log.Info("user updated", zap.String("username", username), zap.String("new_username", name))
	return u, nil
}

func (s *authSvc) DeleteUser(username string) error {
	if username == s.admin {
		return service.ErrProtectedUser
	}
	ok, err := s.r.DeleteByUsername(username)
	if err != nil {
		return fmt.Errorf("delete user %q: %w", username, err)
	}
	if !ok {
		return fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
	}
	s.log.Info("user deleted", zap.String("username", username))
	return nil
}

// RecoverByEmail replaces the password of the account registered with email
// by a random one and returns it. Stored hashes cannot be revealed.
func (s *authSvc) RecoverByEmail(email string) (*service.Recovery, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, invalid("email is required")
	}
	u, err := s.r.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("recover: %w", apperr.FromDB(err))
	}
	temp := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	h, err := hash(temp)
	if err != nil {
		return nil, err
	}
	if err := s.r.SetPassword(u.ID, h); err != nil {
		return nil, fmt.Errorf("recover %s: %w", u.Username, err)
	}
	s.log.Info("temporary password issued", zap.String("username", u.Username))
	return &service.Recovery{Username: u.Username, TemporaryPassword: temp}, nil
}

// EnsureAdmin inserts the administrator account when it is missing. An
// existing account keeps its password.
func (s *authSvc) EnsureAdmin(password string) error {
	_, err := s.r.FindByUsername(s.admin)
	if err == nil {
		return nil
	}
	if !errors.Is(apperr.FromDB(err), apperr.ErrNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}
	h, err := hash(password)
	if err != nil {
		return err
	}
	if err := s.r.Create(&entities.User{Username: s.admin, Password: h, Role: entities.RoleAdmin}); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	s.log.Info("admin account created", zap.String("username", s.admin))
	return nil
}
