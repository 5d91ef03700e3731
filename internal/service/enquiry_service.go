package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/logger"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/queue"
	"github.com/suvai-store/internal/repository"
)

// Enquiry kinds used in alert tasks and admin routing.
const (
	EnquiryKindGeneral  = "enquiry"
	EnquiryKindCatering = "catering"
	EnquiryKindBulk     = "bulk"
)

// EnquiryService handles contact enquiries, catering requests and bulk
// order requests. All three share the new/contacted/closed lifecycle.
type EnquiryService struct {
	enquiryRepo  repository.EnquiryRepository
	cateringRepo repository.CateringRepository
	bulkRepo     repository.BulkOrderRepository
	snackRepo    repository.SnackRepository
	queueClient  *queue.Client
}

// NewEnquiryService creates an enquiry service.
func NewEnquiryService(
	enquiryRepo repository.EnquiryRepository,
	cateringRepo repository.CateringRepository,
	bulkRepo repository.BulkOrderRepository,
	snackRepo repository.SnackRepository,
	queueClient *queue.Client,
) *EnquiryService {
	return &EnquiryService{
		enquiryRepo:  enquiryRepo,
		cateringRepo: cateringRepo,
		bulkRepo:     bulkRepo,
		snackRepo:    snackRepo,
		queueClient:  queueClient,
	}
}

// EnquiryInput is a storefront contact message.
type EnquiryInput struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

// CateringInput is a catering request.
type CateringInput struct {
	Name       string
	Phone      string
	Email      string
	EventDate  time.Time
	GuestCount int
	Items      string
	Notes      string
}

// BulkOrderInput is a wholesale quantity request.
type BulkOrderInput struct {
	Name     string
	Phone    string
	Email    string
	SnackID  *uint
	ItemName string
	Quantity string
	Notes    string
}

// CreateEnquiry stores a contact message and alerts the shop inbox.
func (s *EnquiryService) CreateEnquiry(input EnquiryInput) (*models.Enquiry, error) {
	if err := validateContact(&input.Name, &input.Phone, &input.Email); err != nil {
		return nil, err
	}
	input.Message = strings.TrimSpace(input.Message)
	if input.Message == "" {
		return nil, ErrEnquiryInvalid
	}

	enquiry := &models.Enquiry{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Message: input.Message,
		Status:  constants.EnquiryStatusNew,
	}
	if err := s.enquiryRepo.Create(enquiry); err != nil {
		return nil, err
	}
	s.queueAlert(EnquiryKindGeneral, enquiry.ID)
	return enquiry, nil
}

// CreateCatering stores a catering request and alerts the shop inbox.
func (s *EnquiryService) CreateCatering(input CateringInput) (*models.CateringOrder, error) {
	if err := validateContact(&input.Name, &input.Phone, &input.Email); err != nil {
		return nil, err
	}
	if input.EventDate.IsZero() || input.GuestCount < 1 {
		return nil, ErrEnquiryInvalid
	}

	order := &models.CateringOrder{
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		EventDate:  input.EventDate,
		GuestCount: input.GuestCount,
		Items:      strings.TrimSpace(input.Items),
		Notes:      strings.TrimSpace(input.Notes),
		Status:     constants.EnquiryStatusNew,
	}
	if err := s.cateringRepo.Create(order); err != nil {
		return nil, err
	}
	s.queueAlert(EnquiryKindCatering, order.ID)
	return order, nil
}

// CreateBulkOrder stores a wholesale request and alerts the shop inbox.
// When a catalog item is referenced its English name is snapshotted.
func (s *EnquiryService) CreateBulkOrder(input BulkOrderInput) (*models.BulkOrder, error) {
	if err := validateContact(&input.Name, &input.Phone, &input.Email); err != nil {
		return nil, err
	}
	input.Quantity = strings.TrimSpace(input.Quantity)
	if input.Quantity == "" {
		return nil, ErrEnquiryInvalid
	}

	itemName := strings.TrimSpace(input.ItemName)
	if input.SnackID != nil && *input.SnackID != 0 {
		snack, err := s.snackRepo.GetByID(*input.SnackID)
		if err != nil {
			return nil, err
		}
		if snack == nil {
			return nil, ErrSnackNotFound
		}
		itemName = snack.Name.EN
	}
	if itemName == "" {
		return nil, ErrEnquiryInvalid
	}

	order := &models.BulkOrder{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		SnackID:  input.SnackID,
		ItemName: itemName,
		Quantity: input.Quantity,
		Notes:    strings.TrimSpace(input.Notes),
		Status:   constants.EnquiryStatusNew,
	}
	if err := s.bulkRepo.Create(order); err != nil {
		return nil, err
	}
	s.queueAlert(EnquiryKindBulk, order.ID)
	return order, nil
}

// ListEnquiries pages through contact messages.
func (s *EnquiryService) ListEnquiries(filter repository.EnquiryListFilter) ([]models.Enquiry, int64, error) {
	return s.enquiryRepo.List(filter)
}

// ListCatering pages through catering requests.
func (s *EnquiryService) ListCatering(filter repository.EnquiryListFilter) ([]models.CateringOrder, int64, error) {
	return s.cateringRepo.List(filter)
}

// ListBulkOrders pages through wholesale requests.
func (s *EnquiryService) ListBulkOrders(filter repository.EnquiryListFilter) ([]models.BulkOrder, int64, error) {
	return s.bulkRepo.List(filter)
}

// UpdateStatus moves an enquiry-type record between new/contacted/closed.
func (s *EnquiryService) UpdateStatus(kind string, id uint, status string) error {
	if !isValidEnquiryStatus(status) {
		return ErrStatusInvalid
	}
	switch kind {
	case EnquiryKindGeneral:
		existing, err := s.enquiryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrNotFound
		}
		return s.enquiryRepo.UpdateStatus(id, status)
	case EnquiryKindCatering:
		existing, err := s.cateringRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrNotFound
		}
		return s.cateringRepo.UpdateStatus(id, status)
	case EnquiryKindBulk:
		existing, err := s.bulkRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrNotFound
		}
		return s.bulkRepo.UpdateStatus(id, status)
	default:
		return ErrEnquiryInvalid
	}
}

func (s *EnquiryService) queueAlert(kind string, id uint) {
	if err := s.queueClient.EnqueueEnquiryAlertEmail(queue.EnquiryAlertEmailPayload{
		Kind:      kind,
		EnquiryID: id,
	}); err != nil {
		logger.Warnw("enquiry_alert_enqueue_failed",
			"kind", kind,
			"enquiry_id", id,
			"error", err,
		)
	}
}

func validateContact(name, phone, email *string) error {
	*name = strings.TrimSpace(*name)
	*phone = strings.TrimSpace(*phone)
	*email = strings.TrimSpace(*email)
	if *name == "" || *phone == "" {
		return ErrEnquiryInvalid
	}
	if *email != "" {
		if _, err := mail.ParseAddress(*email); err != nil {
			return ErrInvalidEmail
		}
	}
	return nil
}

func isValidEnquiryStatus(status string) bool {
	switch status {
	case constants.EnquiryStatusNew, constants.EnquiryStatusContacted, constants.EnquiryStatusClosed:
		return true
	}
	return false
}
