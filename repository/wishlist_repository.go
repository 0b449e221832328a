package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
)

type WishlistRepository struct {
	DB *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{DB: db}
}

func (r *WishlistRepository) GetWithProducts(userID uint) (*entity.Wishlist, error) {
	var w entity.Wishlist
	err := r.DB.Preload("Products").Where("user_id = ?", userID).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WishlistRepository) GetOrCreate(userID uint) (*entity.Wishlist, error) {
	var w entity.Wishlist
	err := r.DB.Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w = entity.Wishlist{UserID: userID}
		if err := r.DB.Create(&w).Error; err != nil {
			return nil, err
		}
		return &w, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WishlistRepository) AddProduct(w *entity.Wishlist, p *entity.Product) error {
	return r.DB.Model(w).Association("Products").Append(p)
}

func (r *WishlistRepository) RemoveProduct(w *entity.Wishlist, p *entity.Product) error {
	return r.DB.Model(w).Association("Products").Delete(p)
}
