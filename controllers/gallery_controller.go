package controllers

import (
	"net/http"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type GalleryController struct {
	Repo *repository.GalleryRepository
}

func NewGalleryController(repo *repository.GalleryRepository) *GalleryController {
	return &GalleryController{Repo: repo}
}

// GET /gallery?category=&page=
func (gc *GalleryController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	const perPage = 36
	items, err := gc.Repo.List(c.Query("category"), perPage, (page-1)*perPage)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "page": page})
}

// GET /gallery/:id/image
func (gc *GalleryController) Image(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	img, err := gc.Repo.FindImage(uint(id))
	if err != nil || len(img.Image) == 0 {
		resp.NotFound(c, "image not found")
		return
	}
	c.Data(http.StatusOK, img.ImageType, img.Image)
}

// ===== Admin =====

type galleryUploadReq struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// POST /admin/gallery
func (gc *GalleryController) Upload(c *gin.Context) {
	var req galleryUploadReq
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

	img := entity.InspirationImage{
		Title:        req.Title,
		Category:     req.Category,
		Image:        data,
		ImageType:    ct,
		ImageSize:    int64(len(data)),
		UploadedByID: utils.CurrentUserID(c),
	}
	if err := gc.Repo.Create(&img); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": img.ID})
}

// DELETE /admin/gallery/:id
func (gc *GalleryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := gc.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "deleted": true})
}
