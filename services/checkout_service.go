package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
	"github.com/Althaj-p/Ecom-Backend/repository"
)

type CheckoutService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
	Cache     cache.Store
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	store cache.Store,
) *CheckoutService {
	return &CheckoutService{
		DB:        db,
		CartRepo:  cartRepo,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Cache:     store,
	}
}

type CheckoutIn struct {
	ShippingAddressID uint   `json:"shipping_address_id" binding:"required"`
	PaymentMethod     string `json:"payment_method"`
}

type CheckoutOut struct {
	OrderID uint `json:"order_id"`
}

// Checkout turns the user's cart into an order. The order, its items, the
// total and the cart wipe all commit in one transaction; any failure
// mid-loop leaves the cart untouched and no order behind.
func (s *CheckoutService) Checkout(userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	address, err := s.UserRepo.GetAddressForUser(userID, in.ShippingAddressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, err
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:            userID,
			TotalPrice:        decimal.Zero,
			Status:            entity.OrderStatusPending,
			PaymentStatus:     entity.PaymentStatusPending,
			PaymentMethod:     in.PaymentMethod,
			ShippingAddressID: &address.ID,
		}
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		total := decimal.Zero
		for _, item := range cart.Items {
			// The live variant price is authoritative; the price stored
			// on the cart item is display-only and may be stale.
			if item.VariantID == nil {
				return ErrVariantNotFound
			}
			var variant entity.ProductVariant
			if err := tx.First(&variant, *item.VariantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrVariantNotFound
				}
				return err
			}

			lineTotal := variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(lineTotal)

			orderItem := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: variant.ProductID,
				VariantID: &variant.ID,
				Quantity:  item.Quantity,
				Price:     variant.Price,
			}
			if err := s.OrderRepo.CreateOrderItem(tx, &orderItem); err != nil {
				return err
			}
		}

		if err := s.OrderRepo.SetOrderTotal(tx, order.ID, total); err != nil {
			return err
		}

		// The cart row itself persists, now empty.
		if err := s.CartRepo.ClearItems(tx, cart.ID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Any cached cart view is stale now.
	s.Cache.Delete(cache.CartKey(userID))

	return &CheckoutOut{OrderID: orderID}, nil
}

// ---------------- Order read side ----------------

type OrderItemView struct {
	Product    string          `json:"product"`
	Variant    string          `json:"variant"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type ShippingAddressView struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
}

type OrderDetailView struct {
	OrderID         uint                 `json:"order_id"`
	TotalPrice      decimal.Decimal      `json:"total_price"`
	Status          string               `json:"status"`
	PaymentStatus   string               `json:"payment_status"`
	PaymentMethod   string               `json:"payment_method"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	ShippingAddress *ShippingAddressView `json:"shipping_address"`
	Items           []OrderItemView      `json:"items"`
}

func (s *CheckoutService) OrderDetail(userID, orderID uint) (*OrderDetailView, error) {
	order, err := s.OrderRepo.GetOrderDetailForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	out := &OrderDetailView{
		OrderID:       order.ID,
		TotalPrice:    order.TotalPrice,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		Items:         make([]OrderItemView, 0, len(order.Items)),
	}
	if order.ShippingAddress != nil {
		out.ShippingAddress = &ShippingAddressView{
			AddressLine1: order.ShippingAddress.AddressLine1,
			AddressLine2: order.ShippingAddress.AddressLine2,
			City:         order.ShippingAddress.City,
			State:        order.ShippingAddress.State,
			Country:      order.ShippingAddress.Country,
			PostalCode:   order.ShippingAddress.PostalCode,
		}
	}
	for _, item := range order.Items {
		view := OrderItemView{
			Product:    item.Product.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
			TotalPrice: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
		if item.Variant != nil {
			view.Variant = item.Variant.VariantName
		}
		out.Items = append(out.Items, view)
	}
	return out, nil
}

type OrderHistory struct {
	Orders     []entity.Order `json:"orders"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

const ordersPerPage = 10

func (s *CheckoutService) ListOrders(userID uint, page int) (*OrderHistory, error) {
	if page <= 0 {
		page = 1
	}
	orders, total, err := s.OrderRepo.ListOrdersForUser(userID, page, ordersPerPage)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + ordersPerPage - 1) / ordersPerPage)
	if totalPages == 0 {
		totalPages = 1
	}

	// A page past the end falls back to the first page, it is not an error.
	if page > totalPages {
		page = 1
		orders, _, err = s.OrderRepo.ListOrdersForUser(userID, page, ordersPerPage)
		if err != nil {
			return nil, err
		}
	}
	return &OrderHistory{Orders: orders, Page: page, TotalPages: totalPages}, nil
}

func (s *CheckoutService) ShippingMethods() ([]entity.ShippingMethod, error) {
	return s.OrderRepo.ListShippingMethods()
}
