package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Althaj-p/Ecom-Backend/pkg/resp"
	"github.com/Althaj-p/Ecom-Backend/services"
	"github.com/Althaj-p/Ecom-Backend/utils"
)

type WishlistController struct {
	Svc *services.WishlistService
}

func NewWishlistController(svc *services.WishlistService) *WishlistController {
	return &WishlistController{Svc: svc}
}

// GET /cart/wishlist/
func (h *WishlistController) View(c *gin.Context) {
	wishlist, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrWishlistNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"data": wishlist})
}

type wishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// POST /cart/wishlist/add
func (h *WishlistController) Add(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(utils.CurrentUserID(c), req.ProductID); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": "Product added to wishlist."})
}

// POST /cart/wishlist/delete
func (h *WishlistController) Remove(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Remove(utils.CurrentUserID(c), req.ProductID); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound),
			errors.Is(err, services.ErrWishlistNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"success": "Product removed from wishlist."})
}
