// File: /controllers/user_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cleanworld-api/middleware"
	"cleanworld-api/models"
	"cleanworld-api/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	db        *gorm.DB
	uploadDir string
}

func NewUserController(db *gorm.DB, uploadDir string) *UserController {
	return &UserController{db: db, uploadDir: uploadDir}
}

// GetUser returns a profile. Users may only read their own unless admin.
func (uc *UserController) GetUser(c *gin.Context) {
	callerID := middleware.UserID(c)
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var caller models.User
	if err := uc.db.First(&caller, "id = ?", callerID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown caller"})
		return
	}

	if uint(targetID) != callerID && !caller.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser patches the display name.
func (uc *UserController) UpdateUser(c *gin.Context) {
	callerID := middleware.UserID(c)
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if uint(targetID) != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		utils.SendValidationError(c, "name is required")
		return
	}

	var existing models.User
	if err := uc.db.Where("name = ? AND id != ?", *req.Name, targetID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Name already taken"})
		return
	}

	if err := uc.db.Model(&models.User{}).Where("id = ?", targetID).Update("name", *req.Name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	var user models.User
	uc.db.First(&user, "id = ?", targetID)
	c.JSON(http.StatusOK, user)
}

// UpdatePassword verifies the current password before storing a new hash.
func (uc *UserController) UpdatePassword(c *gin.Context) {
	callerID := middleware.UserID(c)
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if uint(targetID) != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidPassword(req.NewPassword) {
		utils.SendValidationError(c, "Password must be at least 6 characters and mix letter cases, numbers or symbols")
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := uc.db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	utils.SendSuccess(c, "Password updated successfully", nil)
}

// UpdateAvatar stores a multipart image upload and records its URL.
func (uc *UserController) UpdateAvatar(c *gin.Context) {
	callerID := middleware.UserID(c)
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if uint(targetID) != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" && ext != ".webp" {
		utils.SendValidationError(c, "avatar must be a png, jpg or webp image")
		return
	}

	if err := os.MkdirAll(uc.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
		return
	}

	filename := fmt.Sprintf("avatar_%d%s", targetID, ext)
	dst := filepath.Join(uc.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
		return
	}

	avatarURL := "/uploads/" + filename
	if err := uc.db.Model(&models.User{}).Where("id = ?", targetID).Update("avatar", avatarURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": avatarURL})
}
