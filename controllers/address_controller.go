package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Althaj-p/Ecom-Backend/pkg/resp"
	"github.com/Althaj-p/Ecom-Backend/services"
	"github.com/Althaj-p/Ecom-Backend/utils"
)

type AddressController struct {
	Svc *services.AuthService
}

func NewAddressController(svc *services.AuthService) *AddressController {
	return &AddressController{Svc: svc}
}

// GET /checkout/shipping-addresses/
func (h *AddressController) List(c *gin.Context) {
	addresses, err := h.Svc.ListAddresses(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addresses)
}

// POST /checkout/shipping-addresses/
func (h *AddressController) Create(c *gin.Context) {
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	address, err := h.Svc.CreateAddress(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, address)
}

// GET /checkout/shipping-addresses/:id/
func (h *AddressController) Get(c *gin.Context) {
	id := pathID(c, "id")
	address, err := h.Svc.GetAddress(utils.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, address)
}

// PUT /checkout/shipping-addresses/:id/
func (h *AddressController) Update(c *gin.Context) {
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	address, err := h.Svc.UpdateAddress(utils.CurrentUserID(c), pathID(c, "id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, address)
}

// DELETE /checkout/shipping-addresses/:id/
func (h *AddressController) Delete(c *gin.Context) {
	err := h.Svc.DeleteAddress(utils.CurrentUserID(c), pathID(c, "id"))
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": "Address deleted."})
}

// pathID parses a numeric path parameter; zero when malformed, which the
// owner-scoped queries then treat as not found.
func pathID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id)
}
