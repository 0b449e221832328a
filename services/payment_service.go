package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/repository"
)

// PaymentLinkClient is the slice of the razorpay client the service needs;
// tests substitute a fake.
type PaymentLinkClient interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type PaymentService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository

	Links      PaymentLinkClient
	SuccessURL string
	CancelURL  string
}

func NewPaymentService(db *gorm.DB, orderRepo *repository.OrderRepository, links PaymentLinkClient, successURL, cancelURL string) *PaymentService {
	return &PaymentService{
		DB:         db,
		OrderRepo:  orderRepo,
		Links:      links,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}
}

type RecordPaymentIn struct {
	OrderID       uint            `json:"order_id" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	TransactionID string          `json:"transaction_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// Record settles an order: one payment row, payment_status=Completed,
// status=Processing. Not idempotent: a second call for the same order
// fails with ErrAlreadyPaid rather than deduplicating.
func (s *PaymentService) Record(userID uint, in *RecordPaymentIn) error {
	order, err := s.OrderRepo.GetOrderForUser(userID, in.OrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if order.PaymentStatus == entity.PaymentStatusCompleted {
		return ErrAlreadyPaid
	}

	// Exact match required, overpayment is rejected too.
	if !in.Amount.Equal(order.TotalPrice) {
		return ErrAmountMismatch
	}

	taken, err := s.OrderRepo.TransactionExists(in.TransactionID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateTransaction
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		payment := entity.Payment{
			OrderID:       order.ID,
			PaymentMethod: in.PaymentMethod,
			Amount:        in.Amount,
			Status:        entity.PaymentStatusCompleted,
			PaymentDate:   time.Now(),
			TransactionID: in.TransactionID,
		}
		if err := s.OrderRepo.CreatePayment(tx, &payment); err != nil {
			// The unique index backstops the pre-check under concurrency.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTransaction
			}
			return err
		}
		return s.OrderRepo.MarkOrderPaid(tx, order.ID)
	})
}

type PaymentSessionOut struct {
	PaymentURL  string `json:"payment_url"`
	ReferenceID string `json:"reference_id"`
}

// CreateSession asks the payment provider for a hosted checkout page and
// hands the redirect URL back to the client. Settlement still goes through
// Record; success/cancel are external redirects, not modeled here.
func (s *PaymentService) CreateSession(userID, orderID uint) (*PaymentSessionOut, error) {
	order, err := s.OrderRepo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == entity.PaymentStatusCompleted {
		return nil, ErrAlreadyPaid
	}
	if s.Links == nil {
		return nil, ErrPaymentsDisabled
	}

	referenceID := uuid.NewString()
	// Provider amounts are in the smallest currency unit.
	amount := order.TotalPrice.Mul(decimal.NewFromInt(100)).IntPart()

	data := map[string]interface{}{
		"amount":       amount,
		"currency":     "INR",
		"reference_id": referenceID,
		"description":  "Order payment",
		"callback_url": s.SuccessURL,
		"notes": map[string]interface{}{
			"order_id": order.ID,
		},
	}
	link, err := s.Links.Create(data, nil)
	if err != nil {
		return nil, err
	}

	url, _ := link["short_url"].(string)
	return &PaymentSessionOut{PaymentURL: url, ReferenceID: referenceID}, nil
}
