package app

import (
	"go-salary/internal/area"
	"go-salary/internal/employee"
	"go-salary/internal/rate"
	"go-salary/internal/report"
	"go-salary/internal/salaryrecord"

	"gorm.io/gorm"
)

// migrate keeps the schema in sync on startup. The counters and
// outbox tables are plain SQL because their repositories bypass GORM.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&area.Area{},
		&rate.RateAssignment{},
		&salaryrecord.SalaryRecord{},
		&report.SalaryReport{},
	); err != nil {
		return err
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS counters (
			counter_type VARCHAR(50) PRIMARY KEY,
			last_value   BIGINT NOT NULL DEFAULT 0,
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id             UUID PRIMARY KEY,
			request_id     VARCHAR(64),
			aggregate_type VARCHAR(50) NOT NULL,
			aggregate_id   VARCHAR(64) NOT NULL,
			event_type     VARCHAR(100) NOT NULL,
			topic          VARCHAR(200) NOT NULL,
			payload        JSONB NOT NULL,
			status         VARCHAR(20) NOT NULL DEFAULT 'pending',
			retry_count    INT NOT NULL DEFAULT 0,
			next_retry_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			processed_at   TIMESTAMPTZ,
			error_message  VARCHAR(500),
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
			ON outbox_events (status, next_retry_at)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
