package service

import (
	"strings"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"
)

// MediaService manages the storefront menu images and reel videos.
type MediaService struct {
	repo repository.MediaRepository
}

// NewMediaService creates a media service.
func NewMediaService(repo repository.MediaRepository) *MediaService {
	return &MediaService{repo: repo}
}

// MediaInput carries media fields for create and update.
type MediaInput struct {
	Kind      string
	URL       string
	Caption   models.LocalizedText
	SortOrder int
	IsActive  *bool
}

// ListPublic returns active entries of one kind for the storefront.
func (s *MediaService) ListPublic(kind string, page, pageSize int) ([]models.MediaEntry, int64, error) {
	if !isValidMediaKind(kind) {
		return nil, 0, ErrMediaInvalid
	}
	return s.repo.List(repository.MediaListFilter{
		Page:       page,
		PageSize:   pageSize,
		Kind:       kind,
		OnlyActive: true,
	})
}

// List pages through all entries for the back office.
func (s *MediaService) List(filter repository.MediaListFilter) ([]models.MediaEntry, int64, error) {
	if filter.Kind != "" && !isValidMediaKind(filter.Kind) {
		return nil, 0, ErrMediaInvalid
	}
	return s.repo.List(filter)
}

// Create adds a media entry.
func (s *MediaService) Create(input MediaInput) (*models.MediaEntry, error) {
	if err := validateMediaInput(&input); err != nil {
		return nil, err
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	entry := &models.MediaEntry{
		Kind:      input.Kind,
		URL:       input.URL,
		Caption:   input.Caption,
		SortOrder: input.SortOrder,
		IsActive:  isActive,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update replaces the fields of a media entry.
func (s *MediaService) Update(id uint, input MediaInput) (*models.MediaEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	if err := validateMediaInput(&input); err != nil {
		return nil, err
	}

	entry.Kind = input.Kind
	entry.URL = input.URL
	entry.Caption = input.Caption
	entry.SortOrder = input.SortOrder
	if input.IsActive != nil {
		entry.IsActive = *input.IsActive
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes a media entry.
func (s *MediaService) Delete(id uint) error {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func validateMediaInput(input *MediaInput) error {
	input.URL = strings.TrimSpace(input.URL)
	if input.URL == "" {
		return ErrMediaInvalid
	}
	if !isValidMediaKind(input.Kind) {
		return ErrMediaInvalid
	}
	return nil
}

func isValidMediaKind(kind string) bool {
	return kind == constants.MediaKindMenu || kind == constants.MediaKindReel
}
