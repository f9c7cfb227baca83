package controllers

import (
	"net/http"
	"time"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Dashboard: headline counts for the back-office landing page
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	var totalProducts int64
	var newDesignRequests int64
	var pendingCustomizations int64
	var ordersToday int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count users failed"})
		return
	}

	if err := db.Model(&entity.Product{}).Count(&totalProducts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count products failed"})
		return
	}

	if err := db.Model(&entity.DesignRequest{}).
		Where("status = ?", entity.DesignRequestNew).
		Count(&newDesignRequests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count design requests failed"})
		return
	}

	if err := db.Model(&entity.CustomizationRequest{}).
		Where("status = ?", entity.CustomizationPending).
		Count(&pendingCustomizations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count customizations failed"})
		return
	}

	start := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&entity.Order{}).
		Where("created_at >= ?", start).
		Count(&ordersToday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count orders today failed"})
		return
	}

	resp.OK(c, gin.H{
		"totalUsers":            totalUsers,
		"totalProducts":         totalProducts,
		"newDesignRequests":     newDesignRequests,
		"pendingCustomizations": pendingCustomizations,
		"ordersToday":           ordersToday,
	})
}
