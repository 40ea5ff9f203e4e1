package mocks

import (
	"context"
	"time"

	"fl-jobs/internal/domain"

	"github.com/stretchr/testify/mock"
)

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Save(ctx context.Context, sessionID string, user *domain.UserData, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, user, ttl)
	return args.Error(0)
}

func (m *SessionRepository) Get(ctx context.Context, sessionID string) (*domain.UserData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserData), args.Error(1)
}

func (m *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
