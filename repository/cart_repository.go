package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetCartWithItems loads the user's cart with items in insertion order.
// Returns gorm.ErrRecordNotFound when the user has never added anything.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		Preload("Items.Variant").
		Preload("Items.Product").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCart makes the cart lazily on the first add.
func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) FindItemByVariant(cartID, variantID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("cart_id = ? AND variant_id = ?", cartID, variantID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) CreateItem(it *entity.CartItem) error {
	return r.DB.Create(it).Error
}

func (r *CartRepository) SaveItem(it *entity.CartItem) error {
	return r.DB.Save(it).Error
}

// UpdateQuantity sets an absolute quantity on an item the user owns.
func (r *CartRepository) UpdateQuantity(userID, itemID uint, qty int) (int64, error) {
	res := r.DB.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id IN (?)", itemID,
			r.DB.Model(&entity.Cart{}).Select("id").Where("user_id = ?", userID)).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

// RemoveItem deletes one line, scoped to the owning user so cross-user
// deletion is impossible.
func (r *CartRepository) RemoveItem(userID, itemID uint) (int64, error) {
	res := r.DB.
		Where("id = ? AND cart_id IN (?)", itemID,
			r.DB.Model(&entity.Cart{}).Select("id").Where("user_id = ?", userID)).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
