// Package auth implements the OTP login flow and access tokens. The
// OTP is a fixed demo code; no SMS provider is involved.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"fl-jobs/internal/config"
	"fl-jobs/internal/domain"
	"fl-jobs/internal/repository"
	"fl-jobs/internal/service/navigation"
)

var (
	ErrInvalidOTP   = errors.New("invalid otp")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNoSession    = errors.New("no session")
)

type Service interface {
	// SelectRole starts (or resumes) a client flow. An empty clientID
	// allocates one.
	SelectRole(clientID string, input domain.SelectRoleInput) (string, error)
	// SendOTP validates the login form. The demo OTP is considered
	// delivered on success.
	SendOTP(clientID string, input domain.LoginInput) error
	// Login verifies the OTP, creates and persists the session, and
	// returns the user with a signed access token.
	Login(ctx context.Context, clientID string, input domain.VerifyOTPInput) (*domain.UserData, string, error)
	Logout(ctx context.Context, clientID string) error
	// Restore rebuilds a logged-in controller from the persisted
	// session record. Missing or corrupt records yield ErrNoSession.
	Restore(ctx context.Context, clientID string) (*domain.UserData, domain.Screen, error)
	ValidateAccessToken(token string) (*Claims, error)
}

type Claims struct {
	ClientID string          `json:"client_id"`
	Email    string          `json:"email"`
	Role     domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type service struct {
	sessionRepo repository.SessionRepository
	nav         *navigation.Manager
	validate    *validator.Validate
	cfg         *config.Config
}

func NewService(sessionRepo repository.SessionRepository, nav *navigation.Manager, validate *validator.Validate, cfg *config.Config) Service {
	return &service{
		sessionRepo: sessionRepo,
		nav:         nav,
		validate:    validate,
		cfg:         cfg,
	}
}

func (s *service) SelectRole(clientID string, input domain.SelectRoleInput) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		return "", err
	}
	if clientID == "" {
		clientID = navigation.NewClientID()
	}
	s.nav.GetOrCreate(clientID).SelectRole(input.Role)
	return clientID, nil
}

func (s *service) SendOTP(clientID string, input domain.LoginInput) error {
	if err := s.validate.Struct(input); err != nil {
		return err
	}
	ctrl := s.nav.GetOrCreate(clientID)
	if ctrl.Screen() != domain.ScreenLogin {
		return navigation.ErrRoleNotSelected
	}
	return nil
}

func (s *service) Login(ctx context.Context, clientID string, input domain.VerifyOTPInput) (*domain.UserData, string, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, "", err
	}
	if subtle.ConstantTimeCompare([]byte(input.OTP), []byte(s.cfg.DemoOTP)) != 1 {
		return nil, "", ErrInvalidOTP
	}

	ctrl := s.nav.GetOrCreate(clientID)
	user, err := ctrl.Login(ctx, input.Name, input.Email, input.Phone)
	if err != nil {
		return nil, "", err
	}

	token, err := s.signToken(clientID, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) Logout(ctx context.Context, clientID string) error {
	ctrl, ok := s.nav.Get(clientID)
	if !ok {
		return ErrNoSession
	}
	return ctrl.Logout(ctx)
}

func (s *service) Restore(ctx context.Context, clientID string) (*domain.UserData, domain.Screen, error) {
	user, err := s.sessionRepo.Get(ctx, clientID)
	if errors.Is(err, repository.ErrSessionCorrupt) {
		// The record was cleared; the client starts over.
		return nil, domain.ScreenRoleSelection, ErrNoSession
	}
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, domain.ScreenRoleSelection, ErrNoSession
	}

	ctrl := s.nav.Restore(clientID, user)
	return user, ctrl.Screen(), nil
}

func (s *service) signToken(clientID string, user *domain.UserData) (string, error) {
	now := time.Now()
	claims := Claims{
		ClientID: clientID,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTAccessExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
