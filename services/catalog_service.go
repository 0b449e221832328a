package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
	"github.com/Althaj-p/Ecom-Backend/repository"
	"github.com/Althaj-p/Ecom-Backend/utils"
)

type CatalogService struct {
	Repo  *repository.ProductRepository
	Cache cache.Store
}

func NewCatalogService(repo *repository.ProductRepository, store cache.Store) *CatalogService {
	return &CatalogService{Repo: repo, Cache: store}
}

// cached wraps the read-through pattern: try the cache, fall back to the
// loader, store the serialized result. Cache problems never fail the read.
func cached[T any](store cache.Store, key string, load func() (T, error)) (T, error) {
	var out T
	if b, ok := store.Get(key); ok {
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
	}

	out, err := load()
	if err != nil {
		return out, err
	}
	if b, err := json.Marshal(out); err == nil {
		store.Set(key, b, cache.DefaultTTL)
	}
	return out, nil
}

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return cached(s.Cache, cache.CategoriesKey(), s.Repo.ActiveCategories)
}

func (s *CatalogService) Banners() ([]entity.Banner, error) {
	return cached(s.Cache, cache.BannersKey(), s.Repo.ActiveBanners)
}

type VariantPage struct {
	Variants   []entity.ProductVariant `json:"variants"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"total_pages"`
}

const variantsPerPage = 10

func (s *CatalogService) VariantList(page int) (*VariantPage, error) {
	if page <= 0 {
		page = 1
	}
	return cached(s.Cache, cache.VariantListKey(page), func() (*VariantPage, error) {
		variants, total, err := s.Repo.ListVariants(page, variantsPerPage)
		if err != nil {
			return nil, err
		}
		totalPages := int((total + variantsPerPage - 1) / variantsPerPage)
		if totalPages == 0 {
			totalPages = 1
		}
		return &VariantPage{Variants: variants, Page: page, TotalPages: totalPages}, nil
	})
}

func (s *CatalogService) ProductDetail(slug string) (*entity.Product, error) {
	p, err := cached(s.Cache, cache.ProductDetailKey(slug), func() (*entity.Product, error) {
		return s.Repo.GetProductBySlug(slug)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (s *CatalogService) VariantDetail(slug string) (*entity.ProductVariant, error) {
	v, err := cached(s.Cache, cache.VariantDetailKey(slug), func() (*entity.ProductVariant, error) {
		return s.Repo.GetVariantBySlug(slug)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVariantNotFound
	}
	return v, err
}

func (s *CatalogService) PopularVariants() ([]entity.ProductVariant, error) {
	return s.Repo.PopularVariants(10)
}

// ---------------- Writes (admin) ----------------
// Every write deletes the affected keys before returning: there is no
// background invalidation sweep.

type ProductIn struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         string `json:"price" binding:"required"`
	DiscountPrice string `json:"discount_price"`
	SKU           string `json:"sku" binding:"required"`
	TotalStock    int    `json:"total_stock"`
	CategoryID    uint   `json:"category_id" binding:"required"`
}

func (s *CatalogService) CreateProduct(in *ProductIn) (*entity.Product, error) {
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		TotalStock:  in.TotalStock,
		CategoryID:  in.CategoryID,
		Status:      "Active",
		Slug:        utils.MakeSlug(in.Name),
	}
	var err error
	if p.Price, err = parseAmount(in.Price); err != nil {
		return nil, err
	}
	if in.DiscountPrice != "" {
		if p.DiscountPrice, err = parseAmount(in.DiscountPrice); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.CreateProduct(p); err != nil {
		return nil, err
	}
	s.invalidateListings()
	return p, nil
}

func (s *CatalogService) UpdateProduct(id uint, updates map[string]any) error {
	product, err := s.Repo.GetProductByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	if _, err := s.Repo.UpdateProduct(id, updates); err != nil {
		return err
	}

	s.Cache.Delete(cache.ProductDetailKey(product.Slug))
	s.invalidateListings()
	return nil
}

type VariantIn struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	VariantName   string `json:"variant_name" binding:"required"`
	Price         string `json:"price" binding:"required"`
	DiscountPrice string `json:"discount_price"`
	SKU           string `json:"sku" binding:"required"`
	TotalStock    int    `json:"total_stock"`
}

func (s *CatalogService) CreateVariant(in *VariantIn) (*entity.ProductVariant, error) {
	product, err := s.Repo.GetProductByID(in.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	v := &entity.ProductVariant{
		ProductID:   product.ID,
		VariantName: in.VariantName,
		SKU:         in.SKU,
		TotalStock:  in.TotalStock,
		Slug:        utils.MakeSlug(product.Name + " " + in.VariantName),
	}
	if v.Price, err = parseAmount(in.Price); err != nil {
		return nil, err
	}
	if in.DiscountPrice != "" {
		if v.DiscountPrice, err = parseAmount(in.DiscountPrice); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.CreateVariant(v); err != nil {
		return nil, err
	}

	s.Cache.Delete(cache.ProductDetailKey(product.Slug))
	s.invalidateListings()
	return v, nil
}

func (s *CatalogService) UpdateVariant(id uint, updates map[string]any) error {
	variant, err := s.Repo.GetVariantByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrVariantNotFound
	}
	if err != nil {
		return err
	}

	if _, err := s.Repo.UpdateVariant(id, updates); err != nil {
		return err
	}

	s.Cache.Delete(
		cache.VariantDetailKey(variant.Slug),
		cache.ProductDetailKey(variant.Product.Slug),
	)
	s.invalidateListings()
	return nil
}

type CategoryIn struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

func (s *CatalogService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	c := &entity.Category{
		Name:   in.Name,
		Image:  in.Image,
		Active: true,
		Slug:   utils.MakeSlug(in.Name),
	}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, err
	}
	s.Cache.Delete(cache.CategoriesKey())
	return c, nil
}

type BannerIn struct {
	Title       string `json:"title" binding:"required"`
	Image       string `json:"image"`
	LinkURL     string `json:"link_url"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateBanner(in *BannerIn) (*entity.Banner, error) {
	b := &entity.Banner{
		Title:       in.Title,
		Image:       in.Image,
		LinkURL:     in.LinkURL,
		Description: in.Description,
		IsActive:    true,
	}
	if err := s.Repo.CreateBanner(b); err != nil {
		return nil, err
	}
	s.Cache.Delete(cache.BannersKey())
	return b, nil
}

// The listing pages cannot be enumerated precisely, so the first few pages
// are dropped wholesale; deeper pages age out on TTL.
func (s *CatalogService) invalidateListings() {
	keys := make([]string, 0, 10)
	for page := 1; page <= 10; page++ {
		keys = append(keys, cache.VariantListKey(page))
	}
	s.Cache.Delete(keys...)
}

// ---------------- Reviews ----------------

type ReviewIn struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

func (s *CatalogService) ListReviews(productID uint) ([]entity.Review, error) {
	return s.Repo.ListReviews(productID)
}

func (s *CatalogService) CreateReview(userID uint, in *ReviewIn) (*entity.Review, error) {
	if _, err := s.Repo.GetProductByID(in.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	rev := &entity.Review{
		UserID:    userID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Title:     in.Title,
		Content:   in.Content,
	}
	if err := s.Repo.CreateReview(rev); err != nil {
		return nil, err
	}
	return rev, nil
}
