package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_disasters",
		SQL: `CREATE TABLE IF NOT EXISTS disasters (
  id            BIGSERIAL   PRIMARY KEY,
  disaster_name TEXT        NOT NULL,
  disaster_type TEXT        NOT NULL,
  latitude      TEXT        NOT NULL,
  longitude     TEXT        NOT NULL,
  date_time     TEXT        NOT NULL,
  county        TEXT        NOT NULL,
  state         TEXT        NOT NULL,
  country       TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_disasters_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_disasters_created_at ON disasters (created_at);`,
	},
	{
		Name: "create_index_disasters_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_disasters_type ON disasters (disaster_type);`,
	},
}

// EnsureMigrated checks if the 'disasters' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{"component": "database", "db_host": dbHost})

	log.WithField("status", "starting").Info("db_migration_check")

	var exists bool
	query := "SELECT to_regclass('public.disasters') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.WithFields(logrus.Fields{
			"status":      "error",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("db_migration_failed")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"status":      "success",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("db_migration_skip")
		return nil
	}

	log.WithField("status", "in_progress").Info("db_migration_start")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.WithFields(logrus.Fields{
				"status":           "error",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("db_migration_failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.WithFields(logrus.Fields{
			"status":           "success",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("db_migration_step")
	}

	log.WithFields(logrus.Fields{
		"status":      "success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("db_migration_success")

	return nil
}
