package unit_test

import (
	"context"
	"testing"
	"time"

	"fl-jobs/internal/config"
	"fl-jobs/internal/domain"
	"fl-jobs/internal/pkg/validation"
	"fl-jobs/internal/repository"
	"fl-jobs/internal/service/auth"
	"fl-jobs/internal/service/navigation"
	"fl-jobs/tests/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
		SessionTTL:      time.Hour,
		DemoOTP:         "123456",
	}
}

func newAuthService(sessionRepo *mocks.SessionRepository) (auth.Service, *navigation.Manager) {
	cfg := testConfig()
	nav := navigation.NewManager(sessionRepo, cfg.SessionTTL, repository.SeedNotifications)
	return auth.NewService(sessionRepo, nav, validation.New(), cfg), nav
}

func loginForm() domain.LoginInput {
	return domain.LoginInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Phone:    "9876543210",
	}
}

func otpForm(otp string) domain.VerifyOTPInput {
	return domain.VerifyOTPInput{LoginInput: loginForm(), OTP: otp}
}

func TestAuthService_SelectRole(t *testing.T) {
	svc, nav := newAuthService(new(mocks.SessionRepository))

	t.Run("Allocates Client ID", func(t *testing.T) {
		clientID, err := svc.SelectRole("", domain.SelectRoleInput{Role: domain.RoleStoreOwner})

		assert.NoError(t, err)
		assert.NotEmpty(t, clientID)
		ctrl, ok := nav.Get(clientID)
		require.True(t, ok)
		assert.Equal(t, domain.ScreenLogin, ctrl.Screen())
	})

	t.Run("Reuses Provided Client ID", func(t *testing.T) {
		clientID, err := svc.SelectRole("client-7", domain.SelectRoleInput{Role: domain.RoleJobSeeker})

		assert.NoError(t, err)
		assert.Equal(t, "client-7", clientID)
	})

	t.Run("Rejects Unknown Role", func(t *testing.T) {
		_, err := svc.SelectRole("", domain.SelectRoleInput{Role: "admin"})

		var verr validator.ValidationErrors
		assert.ErrorAs(t, err, &verr)
	})
}

func TestAuthService_SendOTP(t *testing.T) {
	svc, _ := newAuthService(new(mocks.SessionRepository))

	t.Run("Requires Role Selection First", func(t *testing.T) {
		err := svc.SendOTP("fresh-client", loginForm())

		assert.ErrorIs(t, err, navigation.ErrRoleNotSelected)
	})

	t.Run("Succeeds After Role Selection", func(t *testing.T) {
		clientID, err := svc.SelectRole("", domain.SelectRoleInput{Role: domain.RoleJobSeeker})
		require.NoError(t, err)

		assert.NoError(t, svc.SendOTP(clientID, loginForm()))
	})

	t.Run("Rejects Bad Phone", func(t *testing.T) {
		form := loginForm()
		form.Phone = "1234567890"

		err := svc.SendOTP("fresh-client", form)

		var verr validator.ValidationErrors
		assert.ErrorAs(t, err, &verr)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Wrong OTP", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		svc, _ := newAuthService(sessionRepo)
		clientID, _ := svc.SelectRole("", domain.SelectRoleInput{Role: domain.RoleJobSeeker})

		user, token, err := svc.Login(ctx, clientID, otpForm("000000"))

		assert.ErrorIs(t, err, auth.ErrInvalidOTP)
		assert.Nil(t, user)
		assert.Empty(t, token)
		sessionRepo.AssertNotCalled(t, "Save")
	})

	t.Run("Without Role Selection", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		svc, _ := newAuthService(sessionRepo)

		_, _, err := svc.Login(ctx, "fresh-client", otpForm("123456"))

		assert.ErrorIs(t, err, navigation.ErrRoleNotSelected)
		sessionRepo.AssertNotCalled(t, "Save")
	})

	t.Run("Success", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		svc, nav := newAuthService(sessionRepo)
		clientID, _ := svc.SelectRole("", domain.SelectRoleInput{Role: domain.RoleStoreOwner})

		sessionRepo.On("Save", ctx, clientID, mock.MatchedBy(func(u *domain.UserData) bool {
			return u.Email == "asha@example.com" && u.Role == domain.RoleStoreOwner
		}), time.Hour).Return(nil).Once()

		user, token, err := svc.Login(ctx, clientID, otpForm("123456"))

		require.NoError(t, err)
		assert.Equal(t, domain.RoleStoreOwner, user.Role)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, clientID, claims.ClientID)
		assert.Equal(t, "asha@example.com", claims.Email)
		assert.Equal(t, domain.RoleStoreOwner, claims.Role)

		ctrl, _ := nav.Get(clientID)
		assert.Equal(t, domain.ScreenHome, ctrl.Screen())
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Malformed OTP Fails Validation", func(t *testing.T) {
		svc, _ := newAuthService(new(mocks.SessionRepository))

		_, _, err := svc.Login(ctx, "client", otpForm("12ab56"))

		var verr validator.ValidationErrors
		assert.ErrorAs(t, err, &verr)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Client", func(t *testing.T) {
		svc, _ := newAuthService(new(mocks.SessionRepository))

		assert.ErrorIs(t, svc.Logout(ctx, "nobody"), auth.ErrNoSession)
	})

	t.Run("Success", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		svc, nav := newAuthService(sessionRepo)
		clientID, _ := svc.SelectRole("", domain.SelectRoleInput{Role: domain.RoleJobSeeker})
		sessionRepo.On("Save", ctx, clientID, mock.Anything, time.Hour).Return(nil).Once()
		_, _, err := svc.Login(ctx, clientID, otpForm("123456"))
		require.NoError(t, err)

		sessionRepo.On("Delete", ctx, clientID).Return(nil).Once()

		require.NoError(t, svc.Logout(ctx, clientID))

		ctrl, _ := nav.Get(clientID)
		assert.Equal(t, domain.ScreenRoleSelection, ctrl.Screen())
		assert.Nil(t, ctrl.User())
		sessionRepo.AssertExpectations(t)
	})
}

func TestAuthService_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("Record Found", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		svc, _ := newAuthService(sessionRepo)
		stored := &domain.UserData{
			Name: "Asha", Email: "asha@example.com",
			Phone: "9876543210", Role: domain.RoleStoreOwner,
		}
		sessionRepo.On("Get", ctx, "client-1").Return(stored, nil).Once()

		user, screen, err := svc.Restore(ctx, "client-1")

		require.NoError(t, err)
		assert.Equal(t, stored, user)
		assert.Equal(t, domain.ScreenHome, screen)
	})

	t.Run("No Record", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		svc, _ := newAuthService(sessionRepo)
		sessionRepo.On("Get", ctx, "client-2").Return(nil, nil).Once()

		_, screen, err := svc.Restore(ctx, "client-2")

		assert.ErrorIs(t, err, auth.ErrNoSession)
		assert.Equal(t, domain.ScreenRoleSelection, screen)
	})

	t.Run("Corrupt Record", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		svc, _ := newAuthService(sessionRepo)
		sessionRepo.On("Get", ctx, "client-3").Return(nil, repository.ErrSessionCorrupt).Once()

		_, screen, err := svc.Restore(ctx, "client-3")

		assert.ErrorIs(t, err, auth.ErrNoSession)
		assert.Equal(t, domain.ScreenRoleSelection, screen)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	svc, _ := newAuthService(new(mocks.SessionRepository))

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-token")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTSecret = "different-secret"
		sessionRepo := new(mocks.SessionRepository)
		nav := navigation.NewManager(sessionRepo, time.Hour, repository.SeedNotifications)
		other := auth.NewService(sessionRepo, nav, validation.New(), otherCfg)

		clientID, _ := other.SelectRole("", domain.SelectRoleInput{Role: domain.RoleJobSeeker})
		sessionRepo.On("Save", mock.Anything, clientID, mock.Anything, mock.Anything).Return(nil).Once()
		_, token, err := other.Login(context.Background(), clientID, otpForm("123456"))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
