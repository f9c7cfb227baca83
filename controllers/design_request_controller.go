package controllers

import (
	"errors"
	"strconv"
	"time"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DesignRequestController struct {
	Service *services.DesignRequestService
	Quotes  *services.QuoteService
	Repo    *repository.DesignRequestRepository
}

func NewDesignRequestController(
	service *services.DesignRequestService,
	quotes *services.QuoteService,
	repo *repository.DesignRequestRepository,
) *DesignRequestController {
	return &DesignRequestController{Service: service, Quotes: quotes, Repo: repo}
}

type designRequestIn struct {
	ContactName  string   `json:"contactName" binding:"required"`
	ContactEmail string   `json:"contactEmail" binding:"required,email"`
	ContactPhone string   `json:"contactPhone"`
	Description  string   `json:"description" binding:"required"`
	MetalType    string   `json:"metalType"`
	StoneType    string   `json:"stoneType"`
	BudgetMinUSD int64    `json:"budgetMinUSD"`
	BudgetMaxUSD int64    `json:"budgetMaxUSD"`
	Images       []string `json:"images"` // base64, max 5
}

// POST /design-requests
func (dc *DesignRequestController) Submit(c *gin.Context) {
	var req designRequestIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dr, err := dc.Service.Submit(utils.CurrentUserID(c), services.DesignRequestIn{
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Description:  req.Description,
		MetalType:    req.MetalType,
		StoneType:    req.StoneType,
		BudgetMinUSD: req.BudgetMinUSD,
		BudgetMaxUSD: req.BudgetMaxUSD,
		ImagesBase64: req.Images,
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, dr)
}

// GET /design-requests (mine)
func (dc *DesignRequestController) ListMine(c *gin.Context) {
	items, err := dc.Repo.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /design-requests/:id (requester or admin)
func (dc *DesignRequestController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	dr, err := dc.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "design request not found")
		return
	}
	if dr.UserID != utils.CurrentUserID(c) && utils.CurrentRole(c) != "admin" {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, gin.H{"request": dr, "quotes": dr.Quotes})
}

// POST /design-requests/:id/quote/accept
func (dc *DesignRequestController) AcceptQuote(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	q, err := dc.Quotes.Accept(utils.CurrentUserID(c), uint(id))
	if err != nil {
		dc.quoteError(c, err)
		return
	}
	resp.OK(c, q)
}

// POST /design-requests/:id/quote/decline
func (dc *DesignRequestController) DeclineQuote(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := dc.Quotes.Decline(utils.CurrentUserID(c), uint(id)); err != nil {
		dc.quoteError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "declined": true})
}

func (dc *DesignRequestController) quoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotRequester):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrWrongState):
		resp.Conflict(c, "no open quote on this request")
	case errors.Is(err, services.ErrQuoteExpired):
		resp.Conflict(c, "quote expired")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "design request not found")
	default:
		resp.ServerError(c, err)
	}
}

// ===== Admin =====

// GET /admin/design-requests?status=
func (dc *DesignRequestController) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	const perPage = 50
	items, err := dc.Repo.ListByStatus(c.Query("status"), perPage, (page-1)*perPage)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "page": page})
}

type quoteIn struct {
	AmountUSD int64  `json:"amountUSD" binding:"required,gt=0"`
	ValidDays int    `json:"validDays" binding:"required,min=1,max=90"`
	Notes     string `json:"notes"`
}

// POST /admin/design-requests/:id/quote
func (dc *DesignRequestController) AdminQuote(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req quoteIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	q, err := dc.Quotes.Offer(uint(id), req.AmountUSD, time.Now().AddDate(0, 0, req.ValidDays), req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrWrongState) {
			resp.Conflict(c, "request is not open for quoting")
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "design request not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, q)
}

// PATCH /admin/design-requests/:id/reject
func (dc *DesignRequestController) AdminReject(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := dc.Quotes.Reject(uint(id)); err != nil {
		dc.quoteError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "rejected": true})
}
