package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"docadmin/internal/logger"
	"docadmin/internal/model"
	"docadmin/internal/repository"
)

var ErrNoUser = errors.New("no authenticated user")

// AppStateService persists the per-user client state.
type AppStateService interface {
	// Load returns the saved state, or nil when the user has none.
	Load(ctx context.Context, userID string) (*model.AppState, error)

	// Save replaces the user's state.
	Save(ctx context.Context, userID string, st model.AppState) (*model.AppState, error)

	// Clear removes the user's state.
	Clear(ctx context.Context, userID string) error
}

type appStateService struct {
	repo repository.AppStateRepository
	log  *logger.Logger
}

func NewAppStateService(repo repository.AppStateRepository, log *logger.Logger) AppStateService {
	return &appStateService{repo: repo, log: log.With("service", "AppStateService")}
}

func (s *appStateService) Load(ctx context.Context, userID string) (*model.AppState, error) {
	if userID == "" {
		return nil, ErrNoUser
	}
	st, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load app state: %w", err)
	}
	// generation never survives a reload
	st.IsGenerating = false
	return st, nil
}

func (s *appStateService) Save(ctx context.Context, userID string, st model.AppState) (*model.AppState, error) {
	if userID == "" {
		return nil, ErrNoUser
	}
	st.UserID = userID
	if st.SelectedDocuments == nil {
		st.SelectedDocuments = []string{}
	}
	if err := s.repo.Upsert(ctx, &st); err != nil {
		return nil, fmt.Errorf("save app state: %w", err)
	}
	st.UpdatedAt = time.Now().UTC()
	s.log.Debug("app state saved", "user_id", userID, "step", st.CurrentStep)
	return &st, nil
}

func (s *appStateService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNoUser
	}
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("clear app state: %w", err)
	}
	return nil
}
