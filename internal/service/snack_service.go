package service

import (
	"strings"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"

	"github.com/shopspring/decimal"
)

// SnackService is the catalog service for both storefront and back office.
type SnackService struct {
	repo repository.SnackRepository
}

// NewSnackService creates a catalog service.
func NewSnackService(repo repository.SnackRepository) *SnackService {
	return &SnackService{repo: repo}
}

// SnackInput carries catalog fields for create and update.
type SnackInput struct {
	Name         models.LocalizedText
	Description  models.LocalizedText
	Price        models.Money
	Image        string
	Category     string
	QuantityUnit string
	Stock        int
	IsEnabled    *bool
	SortOrder    int
}

// ListPublic returns enabled catalog items for the storefront.
func (s *SnackService) ListPublic(filter repository.SnackListFilter) ([]models.SnackItem, int64, error) {
	filter.OnlyEnabled = true
	return s.repo.List(filter)
}

// GetPublic fetches a single enabled catalog item.
func (s *SnackService) GetPublic(id uint) (*models.SnackItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.IsEnabled {
		return nil, ErrSnackNotFound
	}
	return item, nil
}

// List pages through all catalog items for the back office.
func (s *SnackService) List(filter repository.SnackListFilter) ([]models.SnackItem, int64, error) {
	return s.repo.List(filter)
}

// GetByID fetches a catalog item regardless of enabled state.
func (s *SnackService) GetByID(id uint) (*models.SnackItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrSnackNotFound
	}
	return item, nil
}

// Create adds a catalog item.
func (s *SnackService) Create(input SnackInput) (*models.SnackItem, error) {
	if err := validateSnackInput(&input); err != nil {
		return nil, err
	}
	isEnabled := true
	if input.IsEnabled != nil {
		isEnabled = *input.IsEnabled
	}
	item := &models.SnackItem{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Image:        input.Image,
		Category:     input.Category,
		QuantityUnit: input.QuantityUnit,
		Stock:        input.Stock,
		IsEnabled:    isEnabled,
		SortOrder:    input.SortOrder,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces the fields of a catalog item.
func (s *SnackService) Update(id uint, input SnackInput) (*models.SnackItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateSnackInput(&input); err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.Image = input.Image
	item.Category = input.Category
	item.QuantityUnit = input.QuantityUnit
	item.Stock = input.Stock
	item.SortOrder = input.SortOrder
	if input.IsEnabled != nil {
		item.IsEnabled = *input.IsEnabled
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetEnabled flips catalog visibility.
func (s *SnackService) SetEnabled(id uint, enabled bool) (*models.SnackItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	item.IsEnabled = enabled
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateStock sets the absolute stock count.
func (s *SnackService) UpdateStock(id uint, stock int) (*models.SnackItem, error) {
	if stock < 0 {
		return nil, ErrSnackInvalid
	}
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	item.Stock = stock
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a catalog item.
func (s *SnackService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func validateSnackInput(input *SnackInput) error {
	if input.Name.IsEmpty() {
		return ErrSnackInvalid
	}
	if input.Price.Decimal.LessThanOrEqual(decimal.Zero) {
		return ErrSnackInvalid
	}
	if !isValidSnackCategory(input.Category) {
		return ErrSnackInvalid
	}
	if !isValidQuantityUnit(input.QuantityUnit) {
		return ErrSnackInvalid
	}
	if input.Stock < 0 {
		return ErrSnackInvalid
	}
	input.Image = strings.TrimSpace(input.Image)
	return nil
}

func isValidSnackCategory(category string) bool {
	for _, c := range constants.SnackCategories {
		if c == category {
			return true
		}
	}
	return false
}

func isValidQuantityUnit(unit string) bool {
	for _, u := range constants.QuantityUnits {
		if u == unit {
			return true
		}
	}
	return false
}
