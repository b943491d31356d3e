package migration

import (
	"fmt"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"
)

// Migration represents a database migration record
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;unique"`
	Batch     int       `gorm:"not null"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

// MigrationFunc defines a function that can run a migration
type MigrationFunc func(tx *gorm.DB) error

// Migrator handles database migrations
type Migrator struct {
	DB         *gorm.DB
	Migrations map[string]struct {
		Up   MigrationFunc
		Down MigrationFunc
	}
	CurrentBatch int
}

// NewMigrator creates a new migrator instance
func NewMigrator(db *gorm.DB) *Migrator {
	// Ensure migrations table exists
	if err := db.AutoMigrate(&Migration{}); err != nil {
		log.Fatalf("Failed to create migrations table: %v", err)
	}

	// Get current batch number
	var maxBatch int
	db.Model(&Migration{}).Select("COALESCE(MAX(batch), 0)").Row().Scan(&maxBatch)

	return &Migrator{
		DB:           db,
		Migrations:   RegisterMigrations(),
		CurrentBatch: maxBatch + 1,
	}
}

// RegisterMigrations registers all migrations with up and down functions
func RegisterMigrations() map[string]struct {
	Up   MigrationFunc
	Down MigrationFunc
} {
	return map[string]struct {
		Up   MigrationFunc
		Down MigrationFunc
	}{
		"01_create_content_analyses_table": {
			Up:   CreateContentAnalysesTable,
			Down: DropContentAnalysesTable,
		},
		"02_add_indexes": {
			Up:   AddIndexes,
			Down: RemoveIndexes,
		},
	}
}

// sortedNames returns migration names in registration order.
func (m *Migrator) sortedNames() []string {
	names := make([]string, 0, len(m.Migrations))
	for name := range m.Migrations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Migrate runs all pending migrations
func (m *Migrator) Migrate() error {
	// Get already applied migrations
	var appliedMigrations []Migration
	if err := m.DB.Find(&appliedMigrations).Error; err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	appliedMap := make(map[string]bool)
	for _, migration := range appliedMigrations {
		appliedMap[migration.Name] = true
	}

	// Run pending migrations in order
	for _, name := range m.sortedNames() {
		if appliedMap[name] {
			continue
		}
		migration := m.Migrations[name]
		log.Printf("Running migration: %s", name)

		err := m.DB.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			return tx.Create(&Migration{
				Name:  name,
				Batch: m.CurrentBatch,
			}).Error
		})

		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}

		log.Printf("Migration applied: %s", name)
	}

	return nil
}

// Rollback rolls back the last batch of migrations
func (m *Migrator) Rollback() error {
	var migrationsToRollback []Migration
	if err := m.DB.Where("batch = ?", m.CurrentBatch-1).Order("id DESC").Find(&migrationsToRollback).Error; err != nil {
		return fmt.Errorf("failed to get migrations to rollback: %w", err)
	}

	if len(migrationsToRollback) == 0 {
		log.Println("No migrations to rollback")
		return nil
	}

	for _, migration := range migrationsToRollback {
		migrationFuncs, ok := m.Migrations[migration.Name]
		if !ok {
			continue
		}
		log.Printf("Rolling back migration: %s", migration.Name)

		err := m.DB.Transaction(func(tx *gorm.DB) error {
			if err := migrationFuncs.Down(tx); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			return tx.Delete(&migration).Error
		})

		if err != nil {
			return fmt.Errorf("failed to rollback migration %s: %w", migration.Name, err)
		}

		log.Printf("Migration rolled back: %s", migration.Name)
	}

	return nil
}

// Reset rolls back all migrations and then applies them again
func (m *Migrator) Reset() error {
	var appliedMigrations []Migration
	if err := m.DB.Order("id DESC").Find(&appliedMigrations).Error; err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, migration := range appliedMigrations {
		migrationFuncs, ok := m.Migrations[migration.Name]
		if !ok {
			continue
		}
		log.Printf("Rolling back migration: %s", migration.Name)

		err := m.DB.Transaction(func(tx *gorm.DB) error {
			if err := migrationFuncs.Down(tx); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			return tx.Delete(&migration).Error
		})

		if err != nil {
			return fmt.Errorf("failed to rollback migration %s: %w", migration.Name, err)
		}
	}

	m.CurrentBatch = 1

	return m.Migrate()
}

// GetStatus returns the status of all migrations
func (m *Migrator) GetStatus() ([]map[string]interface{}, error) {
	var appliedMigrations []Migration
	if err := m.DB.Find(&appliedMigrations).Error; err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	appliedMap := make(map[string]Migration)
	for _, migration := range appliedMigrations {
		appliedMap[migration.Name] = migration
	}

	var status []map[string]interface{}
	for _, name := range m.sortedNames() {
		migration, applied := appliedMap[name]

		statusMap := map[string]interface{}{
			"name":    name,
			"applied": applied,
		}

		if applied {
			statusMap["batch"] = migration.Batch
			statusMap["timestamp"] = migration.AppliedAt
		} else {
			statusMap["batch"] = 0
			statusMap["timestamp"] = time.Time{}
		}

		status = append(status, statusMap)
	}

	return status, nil
}
