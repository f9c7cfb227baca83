package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Service *services.ContentService
}

func NewContentController(service *services.ContentService) *ContentController {
	return &ContentController{Service: service}
}

type generateContentReq struct {
	Images []string `json:"images"` // extra base64 photos beyond the stored one
	Hint   string   `json:"hint"`   // optional steer, e.g. "vintage bridal"
}

// POST /admin/products/:id/generate-content?apply=true
func (cc *ContentController) Generate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	apply := c.Query("apply") == "true"

	var req generateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	extra := make([][]byte, 0, len(req.Images))
	for _, b64 := range req.Images {
		data, _, err := utils.DecodeBase64Image(b64)
		if err != nil {
			resp.BadRequest(c, "invalid image")
			return
		}
		extra = append(extra, data)
	}

	content, err := cc.Service.GenerateForProduct(c.Request.Context(), uint(id), extra, req.Hint, apply)
	if err != nil {
		if errors.Is(err, services.ErrContentNotConfigured) {
			resp.BadGateway(c, "content generator unavailable")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"content": content, "applied": apply})
}
