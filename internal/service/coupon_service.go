package service

import (
	"strings"
	"time"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponService evaluates discount codes against a cart subtotal.
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService creates a coupon service.
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// CouponResult is the outcome of a successful evaluation.
type CouponResult struct {
	Coupon         *models.Coupon
	DiscountAmount models.Money
}

// Evaluate resolves a coupon code and computes the discount for the given
// subtotal. Codes are matched case-insensitively; the canonical form is
// uppercase. The returned discount never exceeds the subtotal.
func (s *CouponService) Evaluate(code string, subtotal models.Money) (*CouponResult, error) {
	coupon, err := s.Lookup(code)
	if err != nil {
		return nil, err
	}
	if coupon.MinOrderValue.IsPositive() && subtotal.LessThan(coupon.MinOrderValue.Decimal) {
		return nil, ErrCouponMinOrder
	}

	discount := calculateDiscount(coupon, subtotal)
	return &CouponResult{Coupon: coupon, DiscountAmount: discount}, nil
}

// Lookup resolves a coupon code and checks it is currently usable, without
// a cart: active, inside its validity window, not exhausted. The min-order
// check belongs to Evaluate since it needs a subtotal.
func (s *CouponService) Lookup(code string) (*models.Coupon, error) {
	normalized := NormalizeCouponCode(code)
	if normalized == "" {
		return nil, ErrCouponNotFound
	}

	coupon, err := s.couponRepo.GetByCode(normalized)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if !coupon.IsActive {
		return nil, ErrCouponInactive
	}
	now := time.Now()
	if coupon.ExpiresAt != nil && now.After(*coupon.ExpiresAt) {
		return nil, ErrCouponExpired
	}
	if coupon.MaxUsage > 0 && coupon.UsedCount >= coupon.MaxUsage {
		return nil, ErrCouponUsageLimit
	}
	return coupon, nil
}

// NormalizeCouponCode trims and uppercases a raw code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func calculateDiscount(coupon *models.Coupon, subtotal models.Money) models.Money {
	var discount decimal.Decimal
	switch coupon.Type {
	case constants.CouponTypePercentage:
		discount = subtotal.Mul(coupon.Value.Div(decimal.NewFromInt(100)))
		if coupon.MaxDiscount.IsPositive() && discount.GreaterThan(coupon.MaxDiscount.Decimal) {
			discount = coupon.MaxDiscount.Decimal
		}
	case constants.CouponTypeFixed:
		discount = coupon.Value.Decimal
	default:
		return models.NewMoneyFromInt(0)
	}
	if discount.GreaterThan(subtotal.Decimal) {
		discount = subtotal.Decimal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return models.NewMoneyFromDecimal(discount.Round(2))
}
