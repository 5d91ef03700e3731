package repository

import (
	"errors"

	"github.com/suvai-store/internal/models"

	"gorm.io/gorm"
)

// SnackRepository is the catalog data access interface.
type SnackRepository interface {
	GetByID(id uint) (*models.SnackItem, error)
	ListByIDs(ids []uint) ([]models.SnackItem, error)
	Create(item *models.SnackItem) error
	Update(item *models.SnackItem) error
	Delete(id uint) error
	List(filter SnackListFilter) ([]models.SnackItem, int64, error)
	DecrementStock(id uint, quantity int) (bool, error)
	WithTx(tx *gorm.DB) *GormSnackRepository
}

// GormSnackRepository is the GORM implementation.
type GormSnackRepository struct {
	db *gorm.DB
}

// NewSnackRepository creates a catalog repository.
func NewSnackRepository(db *gorm.DB) *GormSnackRepository {
	return &GormSnackRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormSnackRepository) WithTx(tx *gorm.DB) *GormSnackRepository {
	if tx == nil {
		return r
	}
	return &GormSnackRepository{db: tx}
}

// GetByID fetches a catalog item.
func (r *GormSnackRepository) GetByID(id uint) (*models.SnackItem, error) {
	var item models.SnackItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListByIDs fetches multiple catalog items.
func (r *GormSnackRepository) ListByIDs(ids []uint) ([]models.SnackItem, error) {
	if len(ids) == 0 {
		return []models.SnackItem{}, nil
	}
	var items []models.SnackItem
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create persists a catalog item.
func (r *GormSnackRepository) Create(item *models.SnackItem) error {
	return r.db.Create(item).Error
}

// Update saves a catalog item.
func (r *GormSnackRepository) Update(item *models.SnackItem) error {
	return r.db.Save(item).Error
}

// Delete soft-deletes a catalog item.
func (r *GormSnackRepository) Delete(id uint) error {
	return r.db.Delete(&models.SnackItem{}, id).Error
}

// List returns catalog items ordered by sort weight then id.
func (r *GormSnackRepository) List(filter SnackListFilter) ([]models.SnackItem, int64, error) {
	var items []models.SnackItem
	query := r.db.Model(&models.SnackItem{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		condition, argCount := buildBilingualLikeCondition(r.db, []string{"name_en", "name_ta"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}
	if filter.OnlyEnabled {
		query = query.Where("is_enabled = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order asc, id desc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// DecrementStock reduces stock, guarded against going negative.
// Returns false when not enough stock remained.
func (r *GormSnackRepository) DecrementStock(id uint, quantity int) (bool, error) {
	if quantity <= 0 {
		return true, nil
	}
	result := r.db.Model(&models.SnackItem{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
