package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"docadmin/internal/logger"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name         TEXT        NOT NULL,
  description  TEXT        NOT NULL DEFAULT '',
  filename     TEXT        NOT NULL,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  type         TEXT        NOT NULL CHECK (type IN ('TDS','ESR','MSDS','LEED','Installation','Warranty','Acoustic','PartSpec')),
  required     BOOLEAN     NOT NULL DEFAULT false,
  products     JSONB       NOT NULL DEFAULT '[]'::jsonb,
  product_type TEXT        NOT NULL DEFAULT '',
  file_data    BYTEA,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_product_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_product_type ON documents (product_type);`,
	},
	{
		Name: "create_index_documents_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents (created_at);`,
	},
	{
		Name: "create_table_app_state",
		SQL: `CREATE TABLE IF NOT EXISTS app_state (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id            TEXT        NOT NULL UNIQUE,
  current_step       INTEGER     NOT NULL DEFAULT 0,
  form_data          JSONB       NOT NULL DEFAULT '{}'::jsonb,
  selected_documents JSONB       NOT NULL DEFAULT '[]'::jsonb,
  dark_mode          BOOLEAN     NOT NULL DEFAULT false,
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// sentinelQuery checks for the table created by the last step.
const sentinelQuery = "SELECT to_regclass('public.app_state') IS NOT NULL"

// EnsureMigrated runs the schema steps unless the sentinel table already exists.
// Every step is idempotent, so a partially applied schema is completed on the next run.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *logger.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"msg", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
