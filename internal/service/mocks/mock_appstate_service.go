package mocks

import (
	"context"

	"docadmin/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockAppStateService struct {
	mock.Mock
}

func (m *MockAppStateService) Load(ctx context.Context, userID string) (*model.AppState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppState), args.Error(1)
}

func (m *MockAppStateService) Save(ctx context.Context, userID string, st model.AppState) (*model.AppState, error) {
	args := m.Called(ctx, userID, st)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppState), args.Error(1)
}

func (m *MockAppStateService) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
