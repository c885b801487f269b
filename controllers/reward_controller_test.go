// File: /controllers/reward_controller_test.go
package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cleanworld-api/models"
)

func setupRewardRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	db := setupTestDB(t)
	rc := NewRewardController(db, nil)

	r := newTestRouter()
	r.GET("/rewards", rc.GetRewards)
	protected := authGroup(r)
	protected.POST("/rewards/:id/redeem", rc.Redeem)
	protected.GET("/rewards/redemptions", rc.GetRedemptions)

	return db, r
}

func TestGetRewardsOrdersByCost(t *testing.T) {
	db, r := setupRewardRouter(t)
	require.NoError(t, db.Create(&models.Reward{Title: "Caro", Cost: 500}).Error)
	require.NoError(t, db.Create(&models.Reward{Title: "Barato", Cost: 50}).Error)

	w := performRequest(t, r, http.MethodGet, "/rewards", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var rewards []models.Reward
	decodeBody(t, w, &rewards)
	require.Len(t, rewards, 2)
	assert.Equal(t, "Barato", rewards[0].Title)
}

func TestRedeemDeductsPointsAndIssuesCode(t *testing.T) {
	db, r := setupRewardRouter(t)
	user := createTestUser(t, db, "Ana", "ana@example.com")
	require.NoError(t, db.Model(&user).UpdateColumn("points", 120).Error)

	reward := models.Reward{Title: "Bolsa reutilizable", Cost: 100}
	require.NoError(t, db.Create(&reward).Error)

	w := performRequest(t, r, http.MethodPost, fmt.Sprintf("/rewards/%d/redeem", reward.ID), nil, tokenFor(t, user))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var redemption models.Redemption
	decodeBody(t, w, &redemption)
	assert.NotEmpty(t, redemption.Code)
	assert.Equal(t, reward.ID, redemption.RewardID)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, 20, stored.Points)
}

func TestRedeemRejectsInsufficientPoints(t *testing.T) {
	db, r := setupRewardRouter(t)
	user := createTestUser(t, db, "Ana", "ana@example.com")

	reward := models.Reward{Title: "Bolsa reutilizable", Cost: 100}
	require.NoError(t, db.Create(&reward).Error)

	w := performRequest(t, r, http.MethodPost, fmt.Sprintf("/rewards/%d/redeem", reward.ID), nil, tokenFor(t, user))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Zero(t, stored.Points)
}

func TestGetRedemptionsIsScopedToCaller(t *testing.T) {
	db, r := setupRewardRouter(t)
	ana := createTestUser(t, db, "Ana", "ana@example.com")
	eva := createTestUser(t, db, "Eva", "eva@example.com")

	reward := models.Reward{Title: "Entrada", Cost: 10}
	require.NoError(t, db.Create(&reward).Error)
	require.NoError(t, db.Create(&models.Redemption{UserID: ana.ID, RewardID: reward.ID, Code: "a-1"}).Error)
	require.NoError(t, db.Create(&models.Redemption{UserID: eva.ID, RewardID: reward.ID, Code: "e-1"}).Error)

	w := performRequest(t, r, http.MethodGet, "/rewards/redemptions", nil, tokenFor(t, ana))
	require.Equal(t, http.StatusOK, w.Code)

	var redemptions []models.Redemption
	decodeBody(t, w, &redemptions)
	require.Len(t, redemptions, 1)
	assert.Equal(t, "a-1", redemptions[0].Code)
}
