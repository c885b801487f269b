// File: /controllers/reward_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"cleanworld-api/middleware"
	"cleanworld-api/models"
	"cleanworld-api/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardController struct {
	db           *gorm.DB
	emailService *services.EmailService
}

func NewRewardController(db *gorm.DB, emailService *services.EmailService) *RewardController {
	return &RewardController{db: db, emailService: emailService}
}

func (rc *RewardController) GetRewards(c *gin.Context) {
	var rewards []models.Reward
	if err := rc.db.Order("cost ASC").Find(&rewards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rewards"})
		return
	}

	c.JSON(http.StatusOK, rewards)
}

// Redeem deducts the reward's cost from the caller's points and issues a
// voucher code. Deduction and redemption row are one transaction.
func (rc *RewardController) Redeem(c *gin.Context) {
	userID := middleware.UserID(c)
	rewardID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reward id"})
		return
	}

	var reward models.Reward
	if err := rc.db.First(&reward, "id = ?", rewardID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reward not found"})
		return
	}

	var user models.User
	if err := rc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Points < reward.Cost {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough points"})
		return
	}

	redemption := models.Redemption{
		UserID:   user.ID,
		RewardID: reward.ID,
		Code:     uuid.New().String(),
	}

	err = rc.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND points >= ?", user.ID, reward.Cost).
			UpdateColumn("points", gorm.Expr("points - ?", reward.Cost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrInvalidData
		}
		return tx.Create(&redemption).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem reward"})
		return
	}

	if rc.emailService != nil {
		go func() {
			if err := rc.emailService.SendRedemptionEmail(user.Email, user.Name, reward.Title, redemption.Code); err != nil {
				fmt.Printf("Failed to send redemption email: %v\n", err)
			}
		}()
	}

	redemption.Reward = reward
	c.JSON(http.StatusCreated, redemption)
}

// GetRedemptions lists the caller's own redemption history.
func (rc *RewardController) GetRedemptions(c *gin.Context) {
	userID := middleware.UserID(c)

	var redemptions []models.Redemption
	if err := rc.db.Preload("Reward").Where("user_id = ?", userID).Order("created_at DESC").Find(&redemptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch redemptions"})
		return
	}

	c.JSON(http.StatusOK, redemptions)
}
