package mocks

import (
	"context"

	"docadmin/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockAppStateRepository struct {
	mock.Mock
}

func (m *MockAppStateRepository) FindByUserID(ctx context.Context, userID string) (*model.AppState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppState), args.Error(1)
}

func (m *MockAppStateRepository) Upsert(ctx context.Context, st *model.AppState) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockAppStateRepository) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
