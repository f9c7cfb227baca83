package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	PayPal *services.PayPalService
}

func NewPaymentController(paypalSvc *services.PayPalService) *PaymentController {
	return &PaymentController{PayPal: paypalSvc}
}

// POST /orders/:id/payments/paypal
func (pc *PaymentController) CreatePayPalOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res, err := pc.PayPal.CreateAdvanceOrder(c.Request.Context(), utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPayPalNotConfigured) {
			resp.BadGateway(c, "paypal unavailable")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, res)
}

type captureIn struct {
	PayPalOrderID string `json:"paypalOrderId" binding:"required"`
}

// POST /orders/:id/payments/paypal/capture
func (pc *PaymentController) CapturePayPalOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req captureIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := pc.PayPal.CaptureAdvance(c.Request.Context(), utils.CurrentUserID(c), uint(id), req.PayPalOrderID)
	if err != nil {
		if errors.Is(err, services.ErrPayPalNotConfigured) {
			resp.BadGateway(c, "paypal unavailable")
			return
		}
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, "order already advanced")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"orderId": id, "captured": true})
}
