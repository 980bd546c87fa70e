package model

import (
	"encoding/json"
	"time"
)

// AppState is the per-user wizard state persisted between sessions.
// IsGenerating is transient and always false when loaded from storage.
type AppState struct {
	UserID            string          `json:"-"`
	CurrentStep       int             `json:"current_step"`
	FormData          json.RawMessage `json:"form_data"`
	SelectedDocuments []string        `json:"selected_documents"`
	IsGenerating      bool            `json:"is_generating"`
	DarkMode          bool            `json:"dark_mode"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
