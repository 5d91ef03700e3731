package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCouponServiceTest(t *testing.T) (*CouponService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:coupon_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCouponService(repository.NewCouponRepository(db)), db
}

func money(t *testing.T, v string) models.Money {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("parse decimal %q failed: %v", v, err)
	}
	return models.NewMoneyFromDecimal(d)
}

func TestCouponEvaluatePercentageCappedByMaxDiscount(t *testing.T) {
	svc, db := setupCouponServiceTest(t)
	coupon := models.Coupon{
		Code:        "WELCOME10",
		Type:        constants.CouponTypePercentage,
		Value:       money(t, "10"),
		MaxDiscount: money(t, "50"),
		IsActive:    true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	// 10% of 300 is 30, below the cap.
	result, err := svc.Evaluate("welcome10", money(t, "300"))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if got := result.DiscountAmount.String(); got != "30.00" {
		t.Fatalf("discount = %s, want 30.00", got)
	}

	// 10% of 900 is 90, clamped to the 50 cap.
	result, err = svc.Evaluate("WELCOME10", money(t, "900"))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if got := result.DiscountAmount.String(); got != "50.00" {
		t.Fatalf("discount = %s, want 50.00", got)
	}
}

func TestCouponEvaluateFixedClampedToSubtotal(t *testing.T) {
	svc, db := setupCouponServiceTest(t)
	coupon := models.Coupon{
		Code:     "FLAT100",
		Type:     constants.CouponTypeFixed,
		Value:    money(t, "100"),
		IsActive: true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	result, err := svc.Evaluate("FLAT100", money(t, "60"))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if got := result.DiscountAmount.String(); got != "60.00" {
		t.Fatalf("discount = %s, want 60.00", got)
	}
}

func TestCouponEvaluateRejections(t *testing.T) {
	svc, db := setupCouponServiceTest(t)
	expired := time.Now().Add(-time.Hour)
	coupons := []models.Coupon{
		{Code: "INACTIVE", Type: constants.CouponTypeFixed, Value: money(t, "10"), IsActive: false},
		{Code: "EXPIRED", Type: constants.CouponTypeFixed, Value: money(t, "10"), IsActive: true, ExpiresAt: &expired},
		{Code: "USEDUP", Type: constants.CouponTypeFixed, Value: money(t, "10"), IsActive: true, MaxUsage: 5, UsedCount: 5},
		{Code: "MIN500", Type: constants.CouponTypeFixed, Value: money(t, "10"), IsActive: true, MinOrderValue: money(t, "500")},
	}
	for i := range coupons {
		if err := db.Create(&coupons[i]).Error; err != nil {
			t.Fatalf("create coupon %s failed: %v", coupons[i].Code, err)
		}
	}

	cases := []struct {
		code     string
		subtotal string
		want     error
	}{
		{"NOPE", "100", ErrCouponNotFound},
		{"  ", "100", ErrCouponNotFound},
		{"INACTIVE", "100", ErrCouponInactive},
		{"EXPIRED", "100", ErrCouponExpired},
		{"USEDUP", "100", ErrCouponUsageLimit},
		{"MIN500", "499.99", ErrCouponMinOrder},
	}
	for _, tc := range cases {
		_, err := svc.Evaluate(tc.code, money(t, tc.subtotal))
		if !errors.Is(err, tc.want) {
			t.Fatalf("evaluate %q: err = %v, want %v", tc.code, err, tc.want)
		}
	}

	// Exactly at the minimum order value passes.
	if _, err := svc.Evaluate("MIN500", money(t, "500")); err != nil {
		t.Fatalf("evaluate at min order value failed: %v", err)
	}
}

func TestCouponLookupSkipsMinOrderCheck(t *testing.T) {
	svc, db := setupCouponServiceTest(t)
	coupon := models.Coupon{
		Code:          "MIN500",
		Type:          constants.CouponTypeFixed,
		Value:         money(t, "10"),
		MinOrderValue: money(t, "500"),
		IsActive:      true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	// Without a cart the coupon resolves even below its minimum order value.
	found, err := svc.Lookup("min500")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.Code != "MIN500" {
		t.Fatalf("code = %s, want MIN500", found.Code)
	}

	// Evaluate with a small subtotal still enforces it.
	if _, err := svc.Evaluate("MIN500", money(t, "100")); !errors.Is(err, ErrCouponMinOrder) {
		t.Fatalf("evaluate err = %v, want ErrCouponMinOrder", err)
	}

	// The other usability checks still apply to Lookup.
	if _, err := svc.Lookup("NOPE"); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("lookup missing err = %v, want ErrCouponNotFound", err)
	}
	expired := time.Now().Add(-time.Hour)
	stale := models.Coupon{Code: "STALE", Type: constants.CouponTypeFixed, Value: money(t, "5"), IsActive: true, ExpiresAt: &expired}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	if _, err := svc.Lookup("STALE"); !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("lookup expired err = %v, want ErrCouponExpired", err)
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	if got := NormalizeCouponCode("  welcome10 "); got != "WELCOME10" {
		t.Fatalf("normalize = %q, want WELCOME10", got)
	}
	if got := NormalizeCouponCode(""); got != "" {
		t.Fatalf("normalize empty = %q, want empty", got)
	}
}
