package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaizen-center/backend/internal/application"
	"github.com/kaizen-center/backend/internal/domain/users"
)

// ErrInvalidCredentials covers both unknown email and wrong password so
// the response does not leak which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken indicates a missing, malformed or expired session token
var ErrInvalidToken = errors.New("invalid session token")

// Session is the parsed JWT payload
type Session struct {
	UserID string
	Email  string
	Role   users.Role
}

// Service issues and verifies session tokens (HS256 JWT).
type Service struct {
	Users  users.Repository
	Secret []byte
	TTL    time.Duration
	Clock  application.Clock
}

func NewService(repo users.Repository, secret []byte, ttl time.Duration, clock Clock) *Service {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{Users: repo, Secret: secret, TTL: ttl, Clock: clock}
}

// Clock alias so callers don't need to import the parent package
type Clock = application.Clock

// Login verifies the credentials and returns a signed session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *users.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := s.Clock.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  string(u.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.TTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}
	return token, u, nil
}

// Parse verifies a session token and extracts the session.
func (s *Service) Parse(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sess := &Session{}
	if v, ok := claims["sub"].(string); ok {
		sess.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		sess.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		sess.Role = users.Role(v)
	}
	if sess.UserID == "" {
		return nil, ErrInvalidToken
	}
	return sess, nil
}

// HashPassword is used by seeding and registration paths.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
