package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

type HistoryServiceInterface interface {
	History(userID, historyType string, now int64) ([]model.Auction, error)
}

type UserServiceInterface interface {
	Register(name, surname, email, password string) (model.User, error)
	Login(email, password string) (string, error)
	VerifyToken(token string) (string, error)
	Details(userID string) (model.User, error)
}

type UserHandler struct {
	history HistoryServiceInterface
	users   UserServiceInterface
}

func NewUserHandler(history HistoryServiceInterface, users UserServiceInterface) *UserHandler {
	return &UserHandler{history: history, users: users}
}

// HistoryHandler handles GET /api/user/history/:type
func (h *UserHandler) HistoryHandler(c *gin.Context) {
	historyType := c.Param("type")
	userID := c.GetString(ContextUserID)

	auctions, err := h.history.History(userID, historyType, time.Now().Unix())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("HistoryHandler: failed to classify auctions", map[string]any{
			"user_id": userID,
			"type":    historyType,
			"error":   err.Error(),
		})
		return
	}

	page, limit := parsePagination(c)
	result := utils.Paginate(page, limit, auctions)

	utils.JSONPaginated(c, http.StatusOK, result, "history retrieved successfully")
	helpers.LogSuccess("HistoryHandler", "history retrieved successfully", map[string]any{
		"user_id": userID,
		"type":    historyType,
		"total":   result.Metadata.TotalRecords,
	})
}

// DetailsHandler handles GET /api/user/details
func (h *UserHandler) DetailsHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	account, err := h.users.Details(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DetailsHandler: failed to load user", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.UserDetailsResponse{
		Email:      account.Email,
		Name:       account.Name,
		Surname:    account.Surname,
		Registered: account.RegisteredOn,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "user details retrieved successfully")
	helpers.LogSuccess("DetailsHandler", "user details retrieved successfully", map[string]any{
		"user_id": userID,
	})
}
