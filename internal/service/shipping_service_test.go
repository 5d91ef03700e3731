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
	"gorm.io/gorm"
)

func setupShippingServiceTest(t *testing.T) (*ShippingService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:shipping_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewShippingService(repository.NewSettingRepository(db)), db
}

func TestShippingGetConfigCreatesDefaultsLazily(t *testing.T) {
	svc, db := setupShippingServiceTest(t)

	cfg, err := svc.GetConfig()
	if err != nil {
		t.Fatalf("get config failed: %v", err)
	}
	if got := cfg.Charge.String(); got != "50.00" {
		t.Fatalf("default charge = %s, want 50.00", got)
	}
	if got := cfg.FreeShippingThreshold.String(); got != "500.00" {
		t.Fatalf("default threshold = %s, want 500.00", got)
	}

	var setting models.Setting
	if err := db.Where("key = ?", constants.SettingKeyShippingConfig).First(&setting).Error; err != nil {
		t.Fatalf("default config row not persisted: %v", err)
	}
}

func TestShippingUpdateConfigRoundTrip(t *testing.T) {
	svc, _ := setupShippingServiceTest(t)

	want := ShippingConfig{
		Charge:                money(t, "80"),
		FreeShippingThreshold: money(t, "999"),
		Banner:                models.LocalizedText{TA: "இலவச டெலிவரி", EN: "Free delivery"},
		BannerVisible:         true,
	}
	if _, err := svc.UpdateConfig(want); err != nil {
		t.Fatalf("update config failed: %v", err)
	}

	got, err := svc.GetConfig()
	if err != nil {
		t.Fatalf("get config failed: %v", err)
	}
	if got.Charge.String() != "80.00" || got.FreeShippingThreshold.String() != "999.00" {
		t.Fatalf("config = %s / %s, want 80.00 / 999.00", got.Charge.String(), got.FreeShippingThreshold.String())
	}
	if got.Banner.EN != "Free delivery" || got.Banner.TA != want.Banner.TA {
		t.Fatalf("banner not round-tripped: %+v", got.Banner)
	}
	if !got.BannerVisible {
		t.Fatalf("banner_visible not round-tripped")
	}
}

func TestShippingUpdateConfigRejectsNegative(t *testing.T) {
	svc, _ := setupShippingServiceTest(t)

	_, err := svc.UpdateConfig(ShippingConfig{Charge: money(t, "-1")})
	if !errors.Is(err, ErrShippingInvalid) {
		t.Fatalf("err = %v, want ErrShippingInvalid", err)
	}
}

func TestQuoteWithConfigThresholdBoundary(t *testing.T) {
	cfg := ShippingConfig{
		Charge:                money(t, "50"),
		FreeShippingThreshold: money(t, "500"),
	}

	cases := []struct {
		subtotal string
		want     string
	}{
		{"499.99", "50.00"},
		{"500", "0.00"},
		{"500.01", "0.00"},
		{"0", "50.00"},
	}
	for _, tc := range cases {
		got := QuoteWithConfig(cfg, money(t, tc.subtotal))
		if got.String() != tc.want {
			t.Fatalf("quote(%s) = %s, want %s", tc.subtotal, got.String(), tc.want)
		}
	}
}
