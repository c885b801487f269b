// File: /controllers/auth_controller_test.go
package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanworld-api/models"
)

func TestRegisterCreatesUserWithoutToken(t *testing.T) {
	db := setupTestDB(t)
	ac := NewAuthController(db, testJWTSecret, nil)
	r := newTestRouter()
	r.POST("/users", ac.Register)

	w := performRequest(t, r, http.MethodPost, "/users", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": testPassword,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp LoginResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Ana", resp.Name)
	assert.Nil(t, resp.Token, "registration answers without a token; the client signs in next")

	var stored models.User
	require.NoError(t, db.Where("email = ?", "ana@example.com").First(&stored).Error)
	assert.NotEqual(t, testPassword, stored.Password, "passwords are stored hashed")
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "Ana", "ana@example.com")

	ac := NewAuthController(db, testJWTSecret, nil)
	r := newTestRouter()
	r.POST("/users", ac.Register)

	w := performRequest(t, r, http.MethodPost, "/users", map[string]string{
		"name": "Otra", "email": "ana@example.com", "password": testPassword,
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(t, r, http.MethodPost, "/users", map[string]string{
		"name": "Ana", "email": "otra@example.com", "password": testPassword,
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	ac := NewAuthController(db, testJWTSecret, nil)
	r := newTestRouter()
	r.POST("/users", ac.Register)

	w := performRequest(t, r, http.MethodPost, "/users", map[string]string{
		"name": "Ana", "email": "ana@example.com", "password": "aaaaaa",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginReturnsToken(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "Ana", "ana@example.com")

	ac := NewAuthController(db, testJWTSecret, nil)
	r := newTestRouter()
	r.POST("/users/login", ac.Login)

	w := performRequest(t, r, http.MethodPost, "/users/login", map[string]string{
		"email": "ana@example.com", "password": testPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.Token)
	assert.NotEmpty(t, *resp.Token)
	assert.Equal(t, "Ana", resp.Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "Ana", "ana@example.com")

	ac := NewAuthController(db, testJWTSecret, nil)
	r := newTestRouter()
	r.POST("/users/login", ac.Login)

	w := performRequest(t, r, http.MethodPost, "/users/login", map[string]string{
		"email": "ana@example.com", "password": "wrong-pass-1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(t, r, http.MethodPost, "/users/login", map[string]string{
		"email": "nobody@example.com", "password": testPassword,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckEmailAndName(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "Ana", "ana@example.com")

	ac := NewAuthController(db, testJWTSecret, nil)
	r := newTestRouter()
	r.GET("/users/check-email", ac.CheckEmail)
	r.GET("/users/check-user", ac.CheckUser)

	w := performRequest(t, r, http.MethodGet, "/users/check-email?email=ana@example.com", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	decodeBody(t, w, &resp)
	assert.True(t, resp["exists"])

	w = performRequest(t, r, http.MethodGet, "/users/check-user?name=Nadie", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.False(t, resp["exists"])

	w = performRequest(t, r, http.MethodGet, "/users/check-email", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
