package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Service  *services.OrderService
	Payments *repository.PaymentRepository
}

func NewOrderController(service *services.OrderService, payments *repository.PaymentRepository) *OrderController {
	return &OrderController{Service: service, Payments: payments}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := oc.Service.CreateOrder(utils.CurrentUserID(c), req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, res)
}

// GET /orders (mine)
func (oc *OrderController) ListMine(c *gin.Context) {
	items, err := oc.Service.Repo.ListForUser(utils.CurrentUserID(c), 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id (owner only)
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	o, err := oc.Service.Repo.GetOrderForUser(uint(id), utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	items, err := oc.Service.Repo.Items(o.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	payments, err := oc.Payments.FindForOrder(o.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"id": o.ID, "referenceNo": o.ReferenceNo,
		"subtotalUSD": o.SubtotalUSD, "totalUSD": o.TotalUSD, "advanceDueUSD": o.AdvanceDueUSD,
		"orderStatusId": o.OrderStatusID, "shippingAddress": o.ShippingAddress,
		"items": items, "payments": payments,
	})
}

// ===== Admin =====

// GET /admin/orders?status=
func (oc *OrderController) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	statusID, _ := strconv.Atoi(c.DefaultQuery("status", "0"))

	const perPage = 50
	items, err := oc.Service.Repo.ListAll(uint(statusID), perPage, (page-1)*perPage)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "page": page})
}

type orderStatusIn struct {
	Action string `json:"action" binding:"required,oneof=ship deliver cancel"`
}

// PATCH /admin/orders/:id/status
func (oc *OrderController) AdminUpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req orderStatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var err error
	switch req.Action {
	case "ship":
		err = oc.Service.AdminMarkShipped(uint(id))
	case "deliver":
		err = oc.Service.AdminMarkDelivered(uint(id))
	case "cancel":
		err = oc.Service.AdminCancel(uint(id))
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, "invalid transition")
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "action": req.Action})
}
