package service

import (
	"time"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponAdminService is the back-office coupon management service.
type CouponAdminService struct {
	repo repository.CouponRepository
}

// NewCouponAdminService creates a coupon admin service.
func NewCouponAdminService(repo repository.CouponRepository) *CouponAdminService {
	return &CouponAdminService{repo: repo}
}

// CouponInput carries coupon fields for create and update.
type CouponInput struct {
	Code          string
	Name          models.LocalizedText
	Description   models.LocalizedText
	Type          string
	Value         models.Money
	MaxDiscount   models.Money
	MinOrderValue models.Money
	MaxUsage      int
	ExpiresAt     *time.Time
	IsActive      *bool
}

func validateCouponInput(input CouponInput) (string, string, error) {
	code := NormalizeCouponCode(input.Code)
	if code == "" {
		return "", "", ErrCouponInvalid
	}
	couponType := input.Type
	if couponType != constants.CouponTypePercentage && couponType != constants.CouponTypeFixed {
		return "", "", ErrCouponInvalid
	}
	if input.Value.Decimal.LessThanOrEqual(decimal.Zero) {
		return "", "", ErrCouponInvalid
	}
	if couponType == constants.CouponTypePercentage && input.Value.Decimal.GreaterThan(decimal.NewFromInt(100)) {
		return "", "", ErrCouponInvalid
	}
	if input.MaxUsage < 0 {
		return "", "", ErrCouponInvalid
	}
	return code, couponType, nil
}

// Create adds a coupon. The code is stored uppercase.
func (s *CouponAdminService) Create(input CouponInput) (*models.Coupon, error) {
	code, couponType, err := validateCouponInput(input)
	if err != nil {
		return nil, err
	}

	exist, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrCouponCodeExists
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	coupon := &models.Coupon{
		Code:          code,
		Name:          input.Name,
		Description:   input.Description,
		Type:          couponType,
		Value:         input.Value,
		MaxDiscount:   input.MaxDiscount,
		MinOrderValue: input.MinOrderValue,
		MaxUsage:      input.MaxUsage,
		UsedCount:     0,
		ExpiresAt:     input.ExpiresAt,
		IsActive:      isActive,
	}
	if err := s.repo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update replaces the mutable fields of a coupon. UsedCount is never
// writable from the back office.
func (s *CouponAdminService) Update(id uint, input CouponInput) (*models.Coupon, error) {
	if id == 0 {
		return nil, ErrCouponInvalid
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCouponNotFound
	}

	code, couponType, err := validateCouponInput(input)
	if err != nil {
		return nil, err
	}
	if code != existing.Code {
		dup, err := s.repo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, ErrCouponCodeExists
		}
	}

	isActive := existing.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	existing.Code = code
	existing.Name = input.Name
	existing.Description = input.Description
	existing.Type = couponType
	existing.Value = input.Value
	existing.MaxDiscount = input.MaxDiscount
	existing.MinOrderValue = input.MinOrderValue
	existing.MaxUsage = input.MaxUsage
	existing.ExpiresAt = input.ExpiresAt
	existing.IsActive = isActive

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a coupon.
func (s *CouponAdminService) Delete(id uint) error {
	if id == 0 {
		return ErrCouponInvalid
	}
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCouponNotFound
	}
	return s.repo.Delete(id)
}

// GetByID fetches a coupon for the back office.
func (s *CouponAdminService) GetByID(id uint) (*models.Coupon, error) {
	coupon, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// List pages through coupons.
func (s *CouponAdminService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.repo.List(filter)
}
