// File: /controllers/testutil_test.go
package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cleanworld-api/middleware"
	"cleanworld-api/models"
)

const (
	testJWTSecret = "test-secret"
	testPassword  = "Secreta123"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cleanworld.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Zone{},
		&models.CleanupEvent{},
		&models.Reward{},
		&models.Redemption{},
	))
	return db
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func authGroup(r *gin.Engine) *gin.RouterGroup {
	g := r.Group("/")
	g.Use(middleware.AuthMiddleware(testJWTSecret))
	return g
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hashed)}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestZone(t *testing.T, db *gorm.DB, title string, severity models.Severity) models.Zone {
	t.Helper()

	zone := models.Zone{
		Title:     title,
		Latitude:  36.72,
		Longitude: -4.42,
		Severity:  severity,
		Status:    models.ZoneStatusDirty,
	}
	require.NoError(t, db.Create(&zone).Error)
	return zone
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustFuture() time.Time {
	return time.Now().Add(72 * time.Hour).Truncate(time.Second)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
