package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Repo *repository.CatalogRepository
}

func NewCatalogController(repo *repository.CatalogRepository) *CatalogController {
	return &CatalogController{Repo: repo}
}

// GET /catalog/metals
func (cc *CatalogController) Metals(c *gin.Context) {
	metals, err := cc.Repo.ListMetals(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": metals})
}

// GET /catalog/stones
func (cc *CatalogController) Stones(c *gin.Context) {
	stones, err := cc.Repo.ListStones(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": stones})
}

// ===== Admin =====

type metalIn struct {
	Name          string  `json:"name" binding:"required"`
	PriceModifier float64 `json:"priceModifier"` // percent markup
	Description   string  `json:"description"`
}

// POST /admin/metals
func (cc *CatalogController) CreateMetal(c *gin.Context) {
	var req metalIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := entity.MetalType{Name: req.Name, PriceModifier: req.PriceModifier, Description: req.Description}
	if err := cc.Repo.CreateMetal(c.Request.Context(), &m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /admin/metals/:id
func (cc *CatalogController) UpdateMetal(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	updates, ok := bindCatalogUpdates(c)
	if !ok {
		return
	}
	if err := cc.Repo.UpdateMetal(c.Request.Context(), uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

type stoneIn struct {
	Name          string  `json:"name" binding:"required"`
	PriceModifier float64 `json:"priceModifier" binding:"gte=0"` // INR per carat
	Description   string  `json:"description"`
}

// POST /admin/stones
func (cc *CatalogController) CreateStone(c *gin.Context) {
	var req stoneIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s := entity.StoneType{Name: req.Name, PriceModifier: req.PriceModifier, Description: req.Description}
	if err := cc.Repo.CreateStone(c.Request.Context(), &s); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, s)
}

// PATCH /admin/stones/:id
func (cc *CatalogController) UpdateStone(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	updates, ok := bindCatalogUpdates(c)
	if !ok {
		return
	}
	if err := cc.Repo.UpdateStone(c.Request.Context(), uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

func bindCatalogUpdates(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return nil, false
	}
	updates := map[string]any{}
	for _, k := range []string{"name", "price_modifier", "description"} {
		if v, ok := body[k]; ok {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return nil, false
	}
	return updates, true
}
