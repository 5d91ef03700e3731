package repository

import (
	"errors"

	"github.com/suvai-store/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNo(orderNo string) (*models.Order, error)
	GetByGatewayIntentID(intentID string) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateFields(id uint, updates map[string]interface{}) error
	UpdatePaymentStatusIf(id uint, fromStatus, toStatus string, updates map[string]interface{}) (bool, error)
	UpdateFulfillmentStatus(id uint, status, notes string) error
	CountByPaymentStatus() (map[string]int64, error)
	SumPaidTotal() (models.Money, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create persists an order with its items.
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches an order with items.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNo fetches an order by its order number.
func (r *GormOrderRepository) GetByOrderNo(orderNo string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByGatewayIntentID fetches an order by the gateway intent attached to it.
func (r *GormOrderRepository) GetByGatewayIntentID(intentID string) (*models.Order, error) {
	if intentID == "" {
		return nil, nil
	}
	var order models.Order
	if err := r.db.Preload("Items").Where("gateway_intent_id = ?", intentID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders newest first with optional filters.
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})

	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.FulfillmentStatus != "" {
		query = query.Where("fulfillment_status = ?", filter.FulfillmentStatus)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.CustomerEmail != "" {
		query = query.Where("customer_email = ?", filter.CustomerEmail)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Items").Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateFields updates arbitrary columns on an order.
func (r *GormOrderRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// UpdatePaymentStatusIf moves payment status only when the current status matches.
// Returns false when the guard did not match, which keeps concurrent
// confirmations from double-applying.
func (r *GormOrderRepository) UpdatePaymentStatusIf(id uint, fromStatus, toStatus string, updates map[string]interface{}) (bool, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["payment_status"] = toStatus
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", id, fromStatus).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateFulfillmentStatus writes a fulfillment status. Notes overwrite the
// stored ones only when non-empty.
func (r *GormOrderRepository) UpdateFulfillmentStatus(id uint, status, notes string) error {
	updates := map[string]interface{}{"fulfillment_status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// CountByPaymentStatus groups order counts by payment status.
func (r *GormOrderRepository) CountByPaymentStatus() (map[string]int64, error) {
	type row struct {
		PaymentStatus string
		Total         int64
	}
	var rows []row
	if err := r.db.Model(&models.Order{}).
		Select("payment_status, count(*) as total").
		Group("payment_status").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.PaymentStatus] = r.Total
	}
	return counts, nil
}

// SumPaidTotal sums total_amount over paid orders.
func (r *GormOrderRepository) SumPaidTotal() (models.Money, error) {
	var sum models.Money
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("payment_status = ?", "paid").
		Scan(&sum).Error
	if err != nil {
		return models.Money{}, err
	}
	return sum, nil
}
