package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seoscore/seoscore/internal/models"
)

// AnalysisRepository defines operations for stored content analyses
type AnalysisRepository interface {
	Create(analysis *models.ContentAnalysis) error
	FindByID(id uuid.UUID) (*models.ContentAnalysis, error)
	List(page, pageSize int, keyword string) ([]*models.ContentAnalysis, int64, error)
	Delete(id uuid.UUID) error
	Transaction(fn func(tx *gorm.DB) error) error
}

// analysisRepository implements AnalysisRepository
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create persists a completed analysis
func (r *analysisRepository) Create(analysis *models.ContentAnalysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// FindByID finds an analysis by ID
func (r *analysisRepository) FindByID(id uuid.UUID) (*models.ContentAnalysis, error) {
	var analysis models.ContentAnalysis
	if err := r.db.First(&analysis, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

// List returns analyses newest first with pagination, optionally
// filtered by focus keyword
func (r *analysisRepository) List(page, pageSize int, keyword string) ([]*models.ContentAnalysis, int64, error) {
	var analyses []*models.ContentAnalysis
	var count int64

	query := r.db.Model(&models.ContentAnalysis{})
	if keyword != "" {
		query = query.Where("focus_keyword = ?", keyword)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	if err := query.
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&analyses).Error; err != nil {
		return nil, 0, err
	}

	return analyses, count, nil
}

// Delete removes an analysis
func (r *analysisRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.ContentAnalysis{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Transaction runs operations in a transaction
func (r *analysisRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
