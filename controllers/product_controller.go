package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	Repo    *repository.ProductRepository
	Pricing *services.PricingService
}

func NewProductController(repo *repository.ProductRepository, pricing *services.PricingService) *ProductController {
	return &ProductController{Repo: repo, Pricing: pricing}
}

// GET /products?category=&page=
func (pc *ProductController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	categoryID, _ := strconv.Atoi(c.DefaultQuery("category", "0"))

	const perPage = 24
	items, total, err := pc.Repo.List(repository.ProductFilter{
		CategoryID: uint(categoryID),
		StatusName: "Published",
		Limit:      perPage,
		Offset:     (page - 1) * perPage,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page})
}

// GET /products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := pc.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}
	resp.OK(c, p)
}

// GET /products/:id/image
func (pc *ProductController) Image(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := pc.Repo.FindImage(uint(id))
	if err != nil || len(p.Image) == 0 {
		resp.NotFound(c, "image not found")
		return
	}
	c.Data(http.StatusOK, p.ImageType, p.Image)
}

// POST /products/:id/estimate
// Re-runs the estimator for a transient customization selection; nothing is
// persisted here.
func (pc *ProductController) Estimate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var sel services.CustomizationSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := pc.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}

	est := pc.Pricing.EstimateForProduct(c.Request.Context(), p, sel)
	resp.OK(c, est)
}

// ===== Admin =====

type productIn struct {
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description"`
	ShortDescription     string  `json:"shortDescription"`
	Tags                 string  `json:"tags"`
	BasePrice            float64 `json:"basePrice" binding:"required,gt=0"`
	CalculatedPriceUSD   float64 `json:"calculatedPriceUSD" binding:"required,gt=0"`
	MetalType            string  `json:"metalType" binding:"required"`
	MetalWeight          float64 `json:"metalWeight"`
	MainStoneType        string  `json:"mainStoneType"`
	MainStoneWeight      float64 `json:"mainStoneWeight"`
	SecondaryStoneType   string  `json:"secondaryStoneType"`
	SecondaryStoneWeight float64 `json:"secondaryStoneWeight"`
	OtherStoneType       string  `json:"otherStoneType"`
	OtherStoneWeight     float64 `json:"otherStoneWeight"`
	ProductCategoryID    uint    `json:"productCategoryId" binding:"required"`
	ProductStatusID      uint    `json:"productStatusId" binding:"required"`
}

// POST /admin/products
func (pc *ProductController) Create(c *gin.Context) {
	var req productIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p := entity.Product{
		Name:                 req.Name,
		Description:          req.Description,
		ShortDescription:     req.ShortDescription,
		Tags:                 req.Tags,
		BasePrice:            req.BasePrice,
		CalculatedPriceUSD:   req.CalculatedPriceUSD,
		MetalType:            req.MetalType,
		MetalWeight:          req.MetalWeight,
		MainStoneType:        req.MainStoneType,
		MainStoneWeight:      req.MainStoneWeight,
		SecondaryStoneType:   req.SecondaryStoneType,
		SecondaryStoneWeight: req.SecondaryStoneWeight,
		OtherStoneType:       req.OtherStoneType,
		OtherStoneWeight:     req.OtherStoneWeight,
		ProductCategoryID:    req.ProductCategoryID,
		ProductStatusID:      req.ProductStatusID,
	}
	if err := pc.Repo.Create(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": p.ID})
}

// PATCH /admin/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// whitelist columns; anything else is dropped
	allowed := map[string]bool{
		"name": true, "description": true, "short_description": true, "tags": true,
		"base_price": true, "calculated_price_usd": true,
		"metal_type": true, "metal_weight": true,
		"main_stone_type": true, "main_stone_weight": true,
		"secondary_stone_type": true, "secondary_stone_weight": true,
		"other_stone_type": true, "other_stone_weight": true,
		"product_category_id": true, "product_status_id": true,
	}
	for k := range updates {
		if !allowed[k] {
			delete(updates, k)
		}
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := pc.Repo.Update(uint(id), updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

type uploadImageReq struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// PUT /admin/products/:id/image
func (pc *ProductController) UploadImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req uploadImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	data, ct, err := utils.DecodeBase64Image(req.ImageBase64)
	if err != nil {
		resp.BadRequest(c, "invalid image")
		return
	}
	if len(data) > 5*1024*1024 {
		resp.BadRequest(c, "image exceeds 5MB limit")
		return
	}

	if err := pc.Repo.SaveImage(uint(id), data, ct); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "size": len(data)})
}

// DELETE /admin/products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := pc.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "deleted": true})
}
