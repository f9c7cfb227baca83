package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomizationController struct {
	Service *services.CustomizationService
	Repo    *repository.CustomizationRepository
}

func NewCustomizationController(service *services.CustomizationService, repo *repository.CustomizationRepository) *CustomizationController {
	return &CustomizationController{Service: service, Repo: repo}
}

type customizationIn struct {
	ProductID            uint   `json:"productId" binding:"required"`
	MetalTypeID          *uint  `json:"metalTypeId"`
	MainStoneTypeID      *uint  `json:"mainStoneTypeId"`
	SecondaryStoneTypeID *uint  `json:"secondaryStoneTypeId"`
	OtherStoneTypeID     *uint  `json:"otherStoneTypeId"`
	Remarks              string `json:"remarks"`
}

// POST /customization-requests
func (cc *CustomizationController) Submit(c *gin.Context) {
	var req customizationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sel := services.CustomizationSelection{
		MetalTypeID:          req.MetalTypeID,
		MainStoneTypeID:      req.MainStoneTypeID,
		SecondaryStoneTypeID: req.SecondaryStoneTypeID,
		OtherStoneTypeID:     req.OtherStoneTypeID,
	}
	cr, err := cc.Service.Submit(c.Request.Context(), utils.CurrentUserID(c), req.ProductID, sel, req.Remarks)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, cr)
}

// GET /customization-requests (mine)
func (cc *CustomizationController) ListMine(c *gin.Context) {
	items, err := cc.Repo.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// ===== Admin =====

// GET /admin/customization-requests?status=
func (cc *CustomizationController) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	const perPage = 50
	items, err := cc.Repo.ListAll(c.Query("status"), perPage, (page-1)*perPage)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "page": page})
}

type customizationStatusIn struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed cancelled"`
}

// PATCH /admin/customization-requests/:id
func (cc *CustomizationController) AdminUpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req customizationStatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Repo.UpdateStatus(uint(id), req.Status); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}
