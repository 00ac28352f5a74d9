package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id       BIGSERIAL PRIMARY KEY,
		first_name    TEXT NOT NULL DEFAULT '',
		last_name     TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		mobile        TEXT NOT NULL DEFAULT '',
		user_type     TEXT NOT NULL DEFAULT 'user',
		shop_id       BIGINT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS confirmed_cars (
		car_id            BIGSERIAL PRIMARY KEY,
		shop_id           BIGINT NOT NULL,
		detected_datetime TIMESTAMPTZ NOT NULL,
		car_type          TEXT NOT NULL,
		service_type      TEXT NOT NULL DEFAULT '',
		estimated_price   DECIMAL(10,2) NOT NULL DEFAULT 0,
		car_picture_url   TEXT NOT NULL DEFAULT '',
		plate_picture_url TEXT NOT NULL DEFAULT '',
		size_picture_url  TEXT NOT NULL DEFAULT '',
		washed            BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE TABLE IF NOT EXISTS admin_logs (
		log_id           BIGSERIAL PRIMARY KEY,
		admin_id         BIGINT NOT NULL,
		action_type      TEXT NOT NULL,
		action_details   TEXT NOT NULL DEFAULT '',
		affected_user_id BIGINT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_confirmed_cars_shop_detected
		ON confirmed_cars (shop_id, detected_datetime DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_confirmed_cars_detected
		ON confirmed_cars (detected_datetime);`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users (email);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
