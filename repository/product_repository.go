package repository

import (
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) ActiveCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("active = ?", true).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *ProductRepository) ActiveBanners() ([]entity.Banner, error) {
	var out []entity.Banner
	err := r.DB.Where("is_active = ?", true).Order("id ASC").Find(&out).Error
	return out, err
}

// ListVariants pages through the storefront listing, newest first.
func (r *ProductRepository) ListVariants(page, limit int) ([]entity.ProductVariant, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var total int64
	if err := r.DB.Model(&entity.ProductVariant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.ProductVariant
	err := r.DB.
		Preload("Product").
		Preload("Images").
		Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

func (r *ProductRepository) GetProductBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.
		Preload("Category").
		Preload("Variants").
		Preload("Variants.Images").
		Where("slug = ?", slug).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetVariantBySlug(slug string) (*entity.ProductVariant, error) {
	var v entity.ProductVariant
	err := r.DB.
		Preload("Product").
		Preload("Images").
		Where("slug = ?", slug).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ProductRepository) GetVariantByID(id uint) (*entity.ProductVariant, error) {
	var v entity.ProductVariant
	if err := r.DB.Preload("Product").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// PopularVariants ranks variants by how often they appear on order items.
func (r *ProductRepository) PopularVariants(limit int) ([]entity.ProductVariant, error) {
	if limit <= 0 {
		limit = 10
	}
	var ids []uint
	err := r.DB.Model(&entity.OrderItem{}).
		Select("variant_id").
		Where("variant_id IS NOT NULL").
		Group("variant_id").
		Order("COUNT(*) DESC").
		Limit(limit).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []entity.ProductVariant{}, nil
	}

	var out []entity.ProductVariant
	err = r.DB.Preload("Product").Preload("Images").Where("id IN ?", ids).Find(&out).Error
	return out, err
}

// ---------------- Writes (admin) ----------------

func (r *ProductRepository) CreateProduct(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) UpdateProduct(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) GetProductByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) CreateVariant(v *entity.ProductVariant) error {
	return r.DB.Create(v).Error
}

func (r *ProductRepository) UpdateVariant(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.ProductVariant{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *ProductRepository) CreateBanner(b *entity.Banner) error {
	return r.DB.Create(b).Error
}

// ---------------- Reviews ----------------

func (r *ProductRepository) ListReviews(productID uint) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Where("product_id = ?", productID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *ProductRepository) CreateReview(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}
