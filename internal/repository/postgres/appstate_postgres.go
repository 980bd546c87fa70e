package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"docadmin/internal/model"
	"docadmin/internal/repository"
)

// AppStatePostgres is a PostgreSQL implementation of repository.AppStateRepository.
type AppStatePostgres struct {
	db *sql.DB
}

// NewAppStatePostgres creates a new AppStatePostgres repository.
func NewAppStatePostgres(db *sql.DB) *AppStatePostgres {
	return &AppStatePostgres{db: db}
}

var _ repository.AppStateRepository = (*AppStatePostgres)(nil)

// FindByUserID loads the state row of a user.
func (r *AppStatePostgres) FindByUserID(ctx context.Context, userID string) (*model.AppState, error) {
	const q = `
		SELECT user_id, current_step, form_data, selected_documents, dark_mode, updated_at
		FROM app_state
		WHERE user_id = $1
	`
	var (
		st       model.AppState
		formData []byte
		selected []byte
	)
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&st.UserID,
		&st.CurrentStep,
		&formData,
		&selected,
		&st.DarkMode,
		&st.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(formData) > 0 {
		st.FormData = json.RawMessage(formData)
	}
	st.SelectedDocuments = []string{}
	if len(selected) > 0 {
		if err := json.Unmarshal(selected, &st.SelectedDocuments); err != nil {
			return nil, fmt.Errorf("decode selected documents: %w", err)
		}
	}
	return &st, nil
}

// Upsert writes the state in a single statement keyed on user_id.
func (r *AppStatePostgres) Upsert(ctx context.Context, st *model.AppState) error {
	formData := "{}"
	if len(st.FormData) > 0 {
		formData = string(st.FormData)
	}
	selected := st.SelectedDocuments
	if selected == nil {
		selected = []string{}
	}
	selectedJSON, err := json.Marshal(selected)
	if err != nil {
		return fmt.Errorf("encode selected documents: %w", err)
	}

	const q = `
		INSERT INTO app_state (user_id, current_step, form_data, selected_documents, dark_mode)
		VALUES ($1, $2, $3::jsonb, $4::jsonb, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			current_step       = EXCLUDED.current_step,
			form_data          = EXCLUDED.form_data,
			selected_documents = EXCLUDED.selected_documents,
			dark_mode          = EXCLUDED.dark_mode,
			updated_at         = now()
	`
	_, err = r.db.ExecContext(ctx, q,
		st.UserID,
		st.CurrentStep,
		formData,
		string(selectedJSON),
		st.DarkMode,
	)
	return err
}

// DeleteByUserID removes a user's state row.
func (r *AppStatePostgres) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE user_id = $1`, userID)
	return err
}
