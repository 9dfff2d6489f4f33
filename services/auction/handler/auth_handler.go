package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

type AuthHandler struct {
	users UserServiceInterface
}

func NewAuthHandler(users UserServiceInterface) *AuthHandler {
	return &AuthHandler{users: users}
}

// RegisterHandler handles POST /api/auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	account, err := h.users.Register(req.Name, req.Surname, req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: registration failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"user_id": account.UserID},
		fmt.Sprintf("user %s has been added", account.Email))
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": account.UserID,
	})
}

// LoginHandler handles POST /api/auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	c.Header("auth-token", token)
	utils.JSONResponse(c, http.StatusOK, gin.H{"auth-token": token}, "login successful")
	helpers.LogSuccess("LoginHandler", "user logged in", map[string]any{
		"email": req.Email,
	})
}
