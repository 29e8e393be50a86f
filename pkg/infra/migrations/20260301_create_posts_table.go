package migrations

import (
	"github.com/teatime-labs/moodgate/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260301_create_posts_table",
		Name: "Create posts table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
				return err
			}
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS posts (
					id                    UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id               UUID NOT NULL,
					content               TEXT NOT NULL,
					emotion               TEXT NOT NULL,
					ai_emotion            TEXT,
					category              TEXT NOT NULL DEFAULT 'Personal',
					is_anonymous          BOOLEAN NOT NULL DEFAULT FALSE,
					anonymous_name        TEXT,
					support_message       TEXT,
					created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_posts_user_id ON posts (user_id);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS posts;`).Error
		},
	})
}
