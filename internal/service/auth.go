package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/huntflow/api/internal/auth"
)

// ErrInvalidCredentials is returned for any failed login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// OperatorRole is the role claim carried by issued tokens.
const OperatorRole = "operator"

// AuthService validates the single env-seeded operator and issues tokens.
type AuthService struct {
	email        string
	passwordHash []byte
	jwt          *auth.JWTManager
}

// NewAuthService hashes the configured operator password and wires the
// token manager.
func NewAuthService(email, password string, jwtManager *auth.JWTManager) (*AuthService, error) {
	if email == "" || password == "" {
		return nil, errors.New("operator email and password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: hash,
		jwt:          jwtManager,
	}, nil
}

// Login validates credentials and returns a JWT.
func (s *AuthService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	if strings.ToLower(strings.TrimSpace(email)) != s.email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(s.email, s.email, OperatorRole)
	if err != nil {
		return "", err
	}
	return token, nil
}
