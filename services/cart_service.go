package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
	"github.com/Althaj-p/Ecom-Backend/repository"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	Cache       cache.Store
}

func NewCartService(db *gorm.DB, cartRepo *repository.CartRepository, productRepo *repository.ProductRepository, store cache.Store) *CartService {
	return &CartService{DB: db, CartRepo: cartRepo, ProductRepo: productRepo, Cache: store}
}

type CartItemView struct {
	ID        uint            `json:"id"`
	Variant   string          `json:"variant"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CartTotal decimal.Decimal `json:"cart_total"`
}

type CartView struct {
	ID        uint           `json:"id"`
	UserID    uint           `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Items     []CartItemView `json:"items"`
}

// Get serves the cart view through the cache; the DB is only hit on miss.
func (s *CartService) Get(userID uint) (*CartView, error) {
	key := cache.CartKey(userID)
	if b, ok := s.Cache.Get(key); ok {
		var view CartView
		if err := json.Unmarshal(b, &view); err == nil {
			return &view, nil
		}
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	view := &CartView{
		ID:        cart.ID,
		UserID:    cart.UserID,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
		Items:     make([]CartItemView, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		iv := CartItemView{
			ID:        item.ID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			CartTotal: item.CartTotal,
		}
		if item.Variant != nil {
			iv.Variant = item.Variant.VariantName
		}
		view.Items = append(view.Items, iv)
	}

	if b, err := json.Marshal(view); err == nil {
		s.Cache.Set(key, b, cache.DefaultTTL)
	}
	return view, nil
}

type AddToCartIn struct {
	VariantID uint `json:"variant_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// Add puts a variant in the cart. A repeat add increments the quantity by
// the requested amount instead of overwriting, and always refreshes the
// stored price from the live variant.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	variant, err := s.ProductRepo.GetVariantByID(in.VariantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrVariantNotFound
	}
	if err != nil {
		return err
	}

	cart, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	item, err := s.CartRepo.FindItemByVariant(cart.ID, variant.ID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = &entity.CartItem{
			CartID:    cart.ID,
			ProductID: variant.ProductID,
			VariantID: &variant.ID,
			Quantity:  in.Quantity,
		}
		item.Price = variant.Price
		item.CartTotal = variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if err := s.CartRepo.CreateItem(item); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		item.Quantity += in.Quantity
		item.Price = variant.Price
		item.CartTotal = variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if err := s.CartRepo.SaveItem(item); err != nil {
			return err
		}
	}

	s.Cache.Delete(cache.CartKey(userID))
	return nil
}

// UpdateQuantity sets an absolute quantity; no re-pricing happens here.
func (s *CartService) UpdateQuantity(userID, itemID uint, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	affected, err := s.CartRepo.UpdateQuantity(userID, itemID, qty)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	s.Cache.Delete(cache.CartKey(userID))
	return nil
}

func (s *CartService) Remove(userID, itemID uint) error {
	affected, err := s.CartRepo.RemoveItem(userID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	s.Cache.Delete(cache.CartKey(userID))
	return nil
}

func (s *CartService) Clear(userID uint) error {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartNotFound
	}
	if err != nil {
		return err
	}
	if err := s.CartRepo.ClearItems(s.DB, cart.ID); err != nil {
		return err
	}
	s.Cache.Delete(cache.CartKey(userID))
	return nil
}
