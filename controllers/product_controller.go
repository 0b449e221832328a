package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Althaj-p/Ecom-Backend/pkg/resp"
	"github.com/Althaj-p/Ecom-Backend/services"
	"github.com/Althaj-p/Ecom-Backend/utils"
)

type ProductController struct {
	Svc *services.CatalogService
}

func NewProductController(svc *services.CatalogService) *ProductController {
	return &ProductController{Svc: svc}
}

// GET /products/categories
func (h *ProductController) Categories(c *gin.Context) {
	categories, err := h.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"data": categories})
}

// GET /products/banners
func (h *ProductController) Banners(c *gin.Context) {
	banners, err := h.Svc.Banners()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"data": banners})
}

// GET /products/products?page=N
func (h *ProductController) Variants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	out, err := h.Svc.VariantList(page)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /products/products/:slug/
func (h *ProductController) ProductDetail(c *gin.Context) {
	product, err := h.Svc.ProductDetail(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

// GET /products/variants/:slug/
func (h *ProductController) VariantDetail(c *gin.Context) {
	variant, err := h.Svc.VariantDetail(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrVariantNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, variant)
}

// GET /products/popular-variants
func (h *ProductController) PopularVariants(c *gin.Context) {
	variants, err := h.Svc.PopularVariants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"data": variants})
}

// ---------------- Reviews ----------------

// GET /products/reviews/:product_id
func (h *ProductController) Reviews(c *gin.Context) {
	reviews, err := h.Svc.ListReviews(pathID(c, "product_id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"data": reviews})
}

// POST /products/reviews
func (h *ProductController) CreateReview(c *gin.Context) {
	var req services.ReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.CreateReview(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, review)
}

// ---------------- Admin writes ----------------

// POST /admin/products
func (h *ProductController) CreateProduct(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := h.Svc.CreateProduct(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, product)
}

type productUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	TotalStock  *int    `json:"total_stock"`
	Status      *string `json:"status"`
}

// PATCH /admin/products/:id
func (h *ProductController) UpdateProduct(c *gin.Context) {
	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.TotalStock != nil {
		updates["total_stock"] = *req.TotalStock
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := h.Svc.UpdateProduct(pathID(c, "id"), updates); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": "Product updated."})
}

// POST /admin/variants
func (h *ProductController) CreateVariant(c *gin.Context) {
	var req services.VariantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	variant, err := h.Svc.CreateVariant(&req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, variant)
}

type variantUpdateRequest struct {
	VariantName *string `json:"variant_name"`
	Price       *string `json:"price"`
	TotalStock  *int    `json:"total_stock"`
}

// PATCH /admin/variants/:id
func (h *ProductController) UpdateVariant(c *gin.Context) {
	var req variantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.VariantName != nil {
		updates["variant_name"] = *req.VariantName
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.TotalStock != nil {
		updates["total_stock"] = *req.TotalStock
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := h.Svc.UpdateVariant(pathID(c, "id"), updates); err != nil {
		if errors.Is(err, services.ErrVariantNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": "Variant updated."})
}

// POST /admin/categories
func (h *ProductController) CreateCategory(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, err := h.Svc.CreateCategory(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, category)
}

// POST /admin/banners
func (h *ProductController) CreateBanner(c *gin.Context) {
	var req services.BannerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	banner, err := h.Svc.CreateBanner(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, banner)
}
