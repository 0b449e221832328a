package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Althaj-p/Ecom-Backend/pkg/resp"
	"github.com/Althaj-p/Ecom-Backend/services"
	"github.com/Althaj-p/Ecom-Backend/utils"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart/
func (h *CartController) View(c *gin.Context) {
	view, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/add/
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		if errors.Is(err, services.ErrVariantNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": "Item added to cart."})
}

type updateQuantityRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// PATCH /cart/update-quantity/
func (h *CartController) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), req.ItemID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, services.ErrCartItemNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidQuantity):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"success": "Quantity updated."})
}

// DELETE /cart/delete/:item_id/
func (h *CartController) Remove(c *gin.Context) {
	if err := h.Svc.Remove(utils.CurrentUserID(c), pathID(c, "item_id")); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": "Item removed from cart."})
}

// DELETE /cart/clear/
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": "Cart cleared."})
}
