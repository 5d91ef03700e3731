package repository

import (
	"errors"

	"github.com/suvai-store/internal/models"

	"gorm.io/gorm"
)

// CateringRepository is the catering request data access interface.
type CateringRepository interface {
	GetByID(id uint) (*models.CateringOrder, error)
	Create(order *models.CateringOrder) error
	List(filter EnquiryListFilter) ([]models.CateringOrder, int64, error)
	UpdateStatus(id uint, status string) error
}

// GormCateringRepository is the GORM implementation.
type GormCateringRepository struct {
	db *gorm.DB
}

// NewCateringRepository creates a catering repository.
func NewCateringRepository(db *gorm.DB) *GormCateringRepository {
	return &GormCateringRepository{db: db}
}

// GetByID fetches a catering request.
func (r *GormCateringRepository) GetByID(id uint) (*models.CateringOrder, error) {
	var order models.CateringOrder
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Create persists a catering request.
func (r *GormCateringRepository) Create(order *models.CateringOrder) error {
	return r.db.Create(order).Error
}

// List returns catering requests newest first.
func (r *GormCateringRepository) List(filter EnquiryListFilter) ([]models.CateringOrder, int64, error) {
	var orders []models.CateringOrder
	query := r.db.Model(&models.CateringOrder{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus writes the request status.
func (r *GormCateringRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.CateringOrder{}).Where("id = ?", id).Update("status", status).Error
}
