package repository

import (
	"errors"

	"github.com/suvai-store/internal/models"

	"gorm.io/gorm"
)

// MediaRepository is the media feed data access interface.
type MediaRepository interface {
	GetByID(id uint) (*models.MediaEntry, error)
	Create(entry *models.MediaEntry) error
	Update(entry *models.MediaEntry) error
	Delete(id uint) error
	List(filter MediaListFilter) ([]models.MediaEntry, int64, error)
}

// GormMediaRepository is the GORM implementation.
type GormMediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a media repository.
func NewMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

// GetByID fetches a media entry.
func (r *GormMediaRepository) GetByID(id uint) (*models.MediaEntry, error) {
	var entry models.MediaEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Create persists a media entry.
func (r *GormMediaRepository) Create(entry *models.MediaEntry) error {
	return r.db.Create(entry).Error
}

// Update saves a media entry.
func (r *GormMediaRepository) Update(entry *models.MediaEntry) error {
	return r.db.Save(entry).Error
}

// Delete soft-deletes a media entry.
func (r *GormMediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.MediaEntry{}, id).Error
}

// List returns media entries by sort weight.
func (r *GormMediaRepository) List(filter MediaListFilter) ([]models.MediaEntry, int64, error) {
	var entries []models.MediaEntry
	query := r.db.Model(&models.MediaEntry{})

	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order asc, id desc").Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
