package service

import (
	"encoding/json"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"

	"github.com/shopspring/decimal"
)

// Shipping defaults used until the back office saves a config.
var (
	defaultShippingCharge    = decimal.NewFromInt(50)
	defaultShippingThreshold = decimal.NewFromInt(500)
)

// ShippingConfig is the store-wide delivery fee policy.
type ShippingConfig struct {
	Charge                models.Money         `json:"charge"`
	FreeShippingThreshold models.Money         `json:"free_shipping_threshold"`
	Banner                models.LocalizedText `json:"banner"`
	BannerVisible         bool                 `json:"banner_visible"`
}

// ShippingService computes delivery fees from the stored config.
type ShippingService struct {
	settingRepo repository.SettingRepository
}

// NewShippingService creates a shipping service.
func NewShippingService(settingRepo repository.SettingRepository) *ShippingService {
	return &ShippingService{settingRepo: settingRepo}
}

// DefaultShippingConfig returns the built-in policy.
func DefaultShippingConfig() ShippingConfig {
	return ShippingConfig{
		Charge:                models.NewMoneyFromDecimal(defaultShippingCharge),
		FreeShippingThreshold: models.NewMoneyFromDecimal(defaultShippingThreshold),
	}
}

// GetConfig loads the shipping config. The row is created lazily with
// defaults on first read.
func (s *ShippingService) GetConfig() (ShippingConfig, error) {
	setting, err := s.settingRepo.GetByKey(constants.SettingKeyShippingConfig)
	if err != nil {
		return ShippingConfig{}, err
	}
	if setting == nil {
		return s.UpdateConfig(DefaultShippingConfig())
	}

	payload, err := json.Marshal(setting.ValueJSON)
	if err != nil {
		return ShippingConfig{}, err
	}
	cfg := DefaultShippingConfig()
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return ShippingConfig{}, err
	}
	return cfg, nil
}

// UpdateConfig validates and stores the shipping config.
func (s *ShippingService) UpdateConfig(cfg ShippingConfig) (ShippingConfig, error) {
	if cfg.Charge.IsNegative() || cfg.FreeShippingThreshold.IsNegative() {
		return ShippingConfig{}, ErrShippingInvalid
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		return ShippingConfig{}, err
	}
	var value models.JSON
	if err := json.Unmarshal(payload, &value); err != nil {
		return ShippingConfig{}, err
	}
	if _, err := s.settingRepo.Upsert(constants.SettingKeyShippingConfig, value); err != nil {
		return ShippingConfig{}, err
	}
	return cfg, nil
}

// Quote returns the delivery fee for a subtotal. Orders at or above the
// threshold ship free.
func (s *ShippingService) Quote(subtotal models.Money) (models.Money, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return models.Money{}, err
	}
	return QuoteWithConfig(cfg, subtotal), nil
}

// QuoteWithConfig applies a policy to a subtotal without touching storage.
func QuoteWithConfig(cfg ShippingConfig, subtotal models.Money) models.Money {
	if subtotal.GreaterThanOrEqual(cfg.FreeShippingThreshold.Decimal) {
		return models.NewMoneyFromInt(0)
	}
	return cfg.Charge
}
