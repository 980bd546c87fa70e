package repository

import (
	"context"

	"docadmin/internal/model"
)

// AppStateRepository persists one app state row per user.
type AppStateRepository interface {
	// FindByUserID returns the user's state, or sql.ErrNoRows.
	FindByUserID(ctx context.Context, userID string) (*model.AppState, error)

	// Upsert inserts the state or replaces the existing row for the same user.
	Upsert(ctx context.Context, st *model.AppState) error

	// DeleteByUserID removes the user's state; a missing row is not an error.
	DeleteByUserID(ctx context.Context, userID string) error
}
