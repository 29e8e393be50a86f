package migrations

import (
	"github.com/teatime-labs/moodgate/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260312_add_risk_columns_to_posts",
		Name: "Add risk_level and cognitive_distortions to posts",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				ALTER TABLE posts
				ADD COLUMN IF NOT EXISTS risk_level TEXT NOT NULL DEFAULT 'low'
				CHECK (risk_level IN ('low', 'high', 'critical'));
			`).Error; err != nil {
				return err
			}
			if err := db.Exec(`
				ALTER TABLE posts
				ADD COLUMN IF NOT EXISTS cognitive_distortions TEXT[] NOT NULL DEFAULT '{}';
			`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_posts_risk_level ON posts (risk_level)
				WHERE risk_level <> 'low';
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`
				ALTER TABLE posts
				DROP COLUMN IF EXISTS cognitive_distortions,
				DROP COLUMN IF EXISTS risk_level;
			`).Error
		},
	})
}
