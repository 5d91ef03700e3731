package service

import (
	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"
)

// DashboardService aggregates the back-office landing page counters.
type DashboardService struct {
	orderRepo    repository.OrderRepository
	snackRepo    repository.SnackRepository
	enquiryRepo  repository.EnquiryRepository
	cateringRepo repository.CateringRepository
	bulkRepo     repository.BulkOrderRepository
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(
	orderRepo repository.OrderRepository,
	snackRepo repository.SnackRepository,
	enquiryRepo repository.EnquiryRepository,
	cateringRepo repository.CateringRepository,
	bulkRepo repository.BulkOrderRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		snackRepo:    snackRepo,
		enquiryRepo:  enquiryRepo,
		cateringRepo: cateringRepo,
		bulkRepo:     bulkRepo,
	}
}

// DashboardStats is the landing page summary.
type DashboardStats struct {
	OrdersPending   int64        `json:"orders_pending"`
	OrdersPaid      int64        `json:"orders_paid"`
	OrdersFailed    int64        `json:"orders_failed"`
	OrdersCancelled int64        `json:"orders_cancelled"`
	PaidRevenue     models.Money `json:"paid_revenue"`
	SnackCount      int64        `json:"snack_count"`
	NewEnquiries    int64        `json:"new_enquiries"`
	NewCatering     int64        `json:"new_catering"`
	NewBulkOrders   int64        `json:"new_bulk_orders"`
}

// Stats builds the dashboard summary.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	counts, err := s.orderRepo.CountByPaymentStatus()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.SumPaidTotal()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		OrdersPending:   counts[constants.PaymentStatusPending],
		OrdersPaid:      counts[constants.PaymentStatusPaid],
		OrdersFailed:    counts[constants.PaymentStatusFailed],
		OrdersCancelled: counts[constants.PaymentStatusCancelled],
		PaidRevenue:     revenue,
	}

	newFilter := repository.EnquiryListFilter{Status: constants.EnquiryStatusNew, Page: 1, PageSize: 1}
	_, stats.NewEnquiries, err = s.enquiryRepo.List(newFilter)
	if err != nil {
		return nil, err
	}
	_, stats.NewCatering, err = s.cateringRepo.List(newFilter)
	if err != nil {
		return nil, err
	}
	_, stats.NewBulkOrders, err = s.bulkRepo.List(newFilter)
	if err != nil {
		return nil, err
	}
	_, stats.SnackCount, err = s.snackRepo.List(repository.SnackListFilter{Page: 1, PageSize: 1})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
