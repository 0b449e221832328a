package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
	"github.com/Althaj-p/Ecom-Backend/repository"
)

type WishlistService struct {
	Repo        *repository.WishlistRepository
	ProductRepo *repository.ProductRepository
	Cache       cache.Store
}

func NewWishlistService(repo *repository.WishlistRepository, productRepo *repository.ProductRepository, store cache.Store) *WishlistService {
	return &WishlistService{Repo: repo, ProductRepo: productRepo, Cache: store}
}

func (s *WishlistService) Get(userID uint) (*entity.Wishlist, error) {
	key := cache.WishlistKey(userID)
	if b, ok := s.Cache.Get(key); ok {
		var w entity.Wishlist
		if err := json.Unmarshal(b, &w); err == nil {
			return &w, nil
		}
	}

	w, err := s.Repo.GetWithProducts(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWishlistNotFound
	}
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(w); err == nil {
		s.Cache.Set(key, b, cache.DefaultTTL)
	}
	return w, nil
}

func (s *WishlistService) Add(userID, productID uint) error {
	product, err := s.ProductRepo.GetProductByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	w, err := s.Repo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if err := s.Repo.AddProduct(w, product); err != nil {
		return err
	}

	s.Cache.Delete(cache.WishlistKey(userID))
	return nil
}

func (s *WishlistService) Remove(userID, productID uint) error {
	product, err := s.ProductRepo.GetProductByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	w, err := s.Repo.GetWithProducts(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrWishlistNotFound
	}
	if err != nil {
		return err
	}
	if err := s.Repo.RemoveProduct(w, product); err != nil {
		return err
	}

	s.Cache.Delete(cache.WishlistKey(userID))
	return nil
}
