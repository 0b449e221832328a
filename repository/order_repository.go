package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) SetOrderTotal(tx *gorm.DB, orderID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("total_price", total).Error
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderDetailForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Preload("Items.Product").
		Preload("Items.Variant").
		Preload("ShippingAddress").
		Preload("Payments").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrdersForUser pages through order history, newest first.
func (r *OrderRepository) ListOrdersForUser(userID uint, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var total int64
	if err := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Payments").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

// MarkOrderPaid flips payment_status and status together.
func (r *OrderRepository) MarkOrderPaid(tx *gorm.DB, orderID uint) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"payment_status": entity.PaymentStatusCompleted,
			"status":         entity.OrderStatusProcessing,
		}).Error
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) TransactionExists(transactionID string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Payment{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) CountPaymentsForOrder(orderID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Payment{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}

// ---------------- Shipping ----------------

func (r *OrderRepository) ListShippingMethods() ([]entity.ShippingMethod, error) {
	var out []entity.ShippingMethod
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}
