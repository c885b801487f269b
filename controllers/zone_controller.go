// File: /controllers/zone_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"cleanworld-api/middleware"
	"cleanworld-api/models"
	"cleanworld-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ZoneController struct {
	db *gorm.DB
}

func NewZoneController(db *gorm.DB) *ZoneController {
	return &ZoneController{db: db}
}

// CreateZoneRequest accepts severity as numeric rank or symbolic name; the
// models.Severity decoder normalizes it before anything compares it.
type CreateZoneRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description *string         `json:"description"`
	Latitude    float64         `json:"latitude" binding:"required"`
	Longitude   float64         `json:"longitude" binding:"required"`
	ImgURL      *string         `json:"img_url"`
	Severity    models.Severity `json:"severity"`
}

type UpdateZoneRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	ImgURL      *string          `json:"img_url"`
	AfterImgURL *string          `json:"after_img_url"`
	Severity    *models.Severity `json:"severity"`
	Status      *string          `json:"status"`
}

func (zc *ZoneController) GetZones(c *gin.Context) {
	var zones []models.Zone
	if err := zc.db.Order("id ASC").Find(&zones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch zones"})
		return
	}

	c.JSON(http.StatusOK, zones)
}

func (zc *ZoneController) GetZone(c *gin.Context) {
	zoneID := c.Param("id")

	var zone models.Zone
	if err := zc.db.First(&zone, "id = ?", zoneID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		return
	}

	c.JSON(http.StatusOK, zone)
}

func (zc *ZoneController) CreateZone(c *gin.Context) {
	userID := middleware.UserID(c)

	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidLatitude(req.Latitude) || !utils.IsValidLongitude(req.Longitude) {
		utils.SendValidationError(c, "Invalid coordinates")
		return
	}

	severity := req.Severity
	if severity == models.SeverityUnknown {
		severity = models.SeverityMedium
	}

	zone := models.Zone{
		Title:       req.Title,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImgURL:      req.ImgURL,
		Severity:    severity,
		Status:      models.ZoneStatusDirty,
		ReportedID:  &userID,
	}

	if err := zc.db.Create(&zone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create zone"})
		return
	}

	c.JSON(http.StatusCreated, zone)
}

func (zc *ZoneController) UpdateZone(c *gin.Context) {
	zoneID := c.Param("id")

	var zone models.Zone
	if err := zc.db.First(&zone, "id = ?", zoneID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		return
	}

	var req UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImgURL != nil {
		updates["img_url"] = *req.ImgURL
	}
	if req.AfterImgURL != nil {
		updates["after_img_url"] = *req.AfterImgURL
	}
	if req.Severity != nil {
		updates["severity"] = *req.Severity
	}
	if req.Status != nil {
		if *req.Status != models.ZoneStatusDirty && *req.Status != models.ZoneStatusClean {
			utils.SendValidationError(c, "status must be SUCIO or LIMPIO")
			return
		}
		updates["status"] = *req.Status
	}

	if err := zc.db.Model(&zone).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update zone"})
		return
	}

	c.JSON(http.StatusOK, zone)
}

func (zc *ZoneController) DeleteZone(c *gin.Context) {
	zoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone id"})
		return
	}

	var zone models.Zone
	if err := zc.db.First(&zone, "id = ?", zoneID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		return
	}

	// Events targeting the zone go with it
	if err := zc.db.Transaction(func(tx *gorm.DB) error {
		var events []models.CleanupEvent
		if err := tx.Where("zone_id = ?", zone.ID).Find(&events).Error; err != nil {
			return err
		}
		for i := range events {
			if err := tx.Model(&events[i]).Association("Attendees").Clear(); err != nil {
				return err
			}
		}
		if err := tx.Where("zone_id = ?", zone.ID).Delete(&models.CleanupEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&zone).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete zone"})
		return
	}

	utils.SendSuccess(c, "Zone deleted successfully", nil)
}
