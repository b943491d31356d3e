package migration

import (
	"gorm.io/gorm"
)

// CreateContentAnalysesTable creates the content_analyses table
func CreateContentAnalysesTable(tx *gorm.DB) error {
	return tx.Exec(`
		CREATE TABLE IF NOT EXISTS content_analyses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			url VARCHAR(2048),
			title VARCHAR(512),
			focus_keyword VARCHAR(255) NOT NULL,
			score INTEGER NOT NULL,
			max_score INTEGER NOT NULL,
			rating VARCHAR(20) NOT NULL,
			word_count INTEGER NOT NULL,
			result JSONB,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted_at TIMESTAMP WITH TIME ZONE
		)
	`).Error
}

// DropContentAnalysesTable drops the content_analyses table
func DropContentAnalysesTable(tx *gorm.DB) error {
	return tx.Exec("DROP TABLE IF EXISTS content_analyses CASCADE").Error
}

// AddIndexes creates the lookup indexes used by the history endpoints
func AddIndexes(tx *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_content_analyses_url ON content_analyses(url)",
		"CREATE INDEX IF NOT EXISTS idx_content_analyses_focus_keyword ON content_analyses(focus_keyword)",
		"CREATE INDEX IF NOT EXISTS idx_content_analyses_score ON content_analyses(score)",
		"CREATE INDEX IF NOT EXISTS idx_content_analyses_rating ON content_analyses(rating)",
		"CREATE INDEX IF NOT EXISTS idx_content_analyses_created_at ON content_analyses(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_content_analyses_deleted_at ON content_analyses(deleted_at)",
	}

	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// RemoveIndexes drops the lookup indexes
func RemoveIndexes(tx *gorm.DB) error {
	statements := []string{
		"DROP INDEX IF EXISTS idx_content_analyses_url",
		"DROP INDEX IF EXISTS idx_content_analyses_focus_keyword",
		"DROP INDEX IF EXISTS idx_content_analyses_score",
		"DROP INDEX IF EXISTS idx_content_analyses_rating",
		"DROP INDEX IF EXISTS idx_content_analyses_created_at",
		"DROP INDEX IF EXISTS idx_content_analyses_deleted_at",
	}

	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
