package repository

import (
	"errors"

	"github.com/suvai-store/internal/models"

	"gorm.io/gorm"
)

// BulkOrderRepository is the wholesale request data access interface.
type BulkOrderRepository interface {
	GetByID(id uint) (*models.BulkOrder, error)
	Create(order *models.BulkOrder) error
	List(filter EnquiryListFilter) ([]models.BulkOrder, int64, error)
	UpdateStatus(id uint, status string) error
}

// GormBulkOrderRepository is the GORM implementation.
type GormBulkOrderRepository struct {
	db *gorm.DB
}

// NewBulkOrderRepository creates a bulk order repository.
func NewBulkOrderRepository(db *gorm.DB) *GormBulkOrderRepository {
	return &GormBulkOrderRepository{db: db}
}

// GetByID fetches a bulk order request.
func (r *GormBulkOrderRepository) GetByID(id uint) (*models.BulkOrder, error) {
	var order models.BulkOrder
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Create persists a bulk order request.
func (r *GormBulkOrderRepository) Create(order *models.BulkOrder) error {
	return r.db.Create(order).Error
}

// List returns bulk order requests newest first.
func (r *GormBulkOrderRepository) List(filter EnquiryListFilter) ([]models.BulkOrder, int64, error) {
	var orders []models.BulkOrder
	query := r.db.Model(&models.BulkOrder{})

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
func (r *GormBulkOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.BulkOrder{}).Where("id = ?", id).Update("status", status).Error
}
