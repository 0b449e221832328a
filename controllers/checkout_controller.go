package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Althaj-p/Ecom-Backend/pkg/resp"
	"github.com/Althaj-p/Ecom-Backend/services"
	"github.com/Althaj-p/Ecom-Backend/utils"
)

type CheckoutController struct {
	Svc     *services.CheckoutService
	Payment *services.PaymentService
}

func NewCheckoutController(svc *services.CheckoutService, payment *services.PaymentService) *CheckoutController {
	return &CheckoutController{Svc: svc, Payment: payment}
}

// POST /checkout/
func (h *CheckoutController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrCartNotFound),
			errors.Is(err, services.ErrAddressNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"order_id": out.OrderID, "message": "Order created successfully."})
}

// POST /checkout/payment/
func (h *CheckoutController) ProcessPayment(c *gin.Context) {
	var req services.RecordPaymentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Payment.Record(utils.CurrentUserID(c), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrAlreadyPaid),
			errors.Is(err, services.ErrAmountMismatch),
			errors.Is(err, services.ErrDuplicateTransaction):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "Payment processed successfully."})
}

// POST /checkout/payment-session/
func (h *CheckoutController) CreatePaymentSession(c *gin.Context) {
	var req struct {
		OrderID uint `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Payment.CreateSession(utils.CurrentUserID(c), req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrAlreadyPaid),
			errors.Is(err, services.ErrPaymentsDisabled):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, out)
}

// GET /checkout/order-view/:order_id/
func (h *CheckoutController) OrderDetail(c *gin.Context) {
	out, err := h.Svc.OrderDetail(utils.CurrentUserID(c), pathID(c, "order_id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /checkout/orders/?page=N
func (h *CheckoutController) Orders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	out, err := h.Svc.ListOrders(utils.CurrentUserID(c), page)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /checkout/shipping-methods/
func (h *CheckoutController) ShippingMethods(c *gin.Context) {
	methods, err := h.Svc.ShippingMethods()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"shipping_methods": methods})
}
