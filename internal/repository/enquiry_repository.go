package repository

import (
	"errors"

	"github.com/suvai-store/internal/models"

	"gorm.io/gorm"
)

// EnquiryRepository is the contact enquiry data access interface.
type EnquiryRepository interface {
	GetByID(id uint) (*models.Enquiry, error)
	Create(enquiry *models.Enquiry) error
	List(filter EnquiryListFilter) ([]models.Enquiry, int64, error)
	UpdateStatus(id uint, status string) error
}

// GormEnquiryRepository is the GORM implementation.
type GormEnquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates an enquiry repository.
func NewEnquiryRepository(db *gorm.DB) *GormEnquiryRepository {
	return &GormEnquiryRepository{db: db}
}

// GetByID fetches an enquiry.
func (r *GormEnquiryRepository) GetByID(id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := r.db.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enquiry, nil
}

// Create persists an enquiry.
func (r *GormEnquiryRepository) Create(enquiry *models.Enquiry) error {
	return r.db.Create(enquiry).Error
}

// List returns enquiries newest first.
func (r *GormEnquiryRepository) List(filter EnquiryListFilter) ([]models.Enquiry, int64, error) {
	var enquiries []models.Enquiry
	query := r.db.Model(&models.Enquiry{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&enquiries).Error; err != nil {
		return nil, 0, err
	}
	return enquiries, total, nil
}

// UpdateStatus writes the enquiry status.
func (r *GormEnquiryRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Enquiry{}).Where("id = ?", id).Update("status", status).Error
}
