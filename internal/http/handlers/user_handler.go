package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanpaKamil/admin/internal/models"
	"github.com/TanpaKamil/admin/internal/services"
	"github.com/TanpaKamil/admin/internal/utils"
)

type UserHandler struct {
	users *services.UserService
}

type UserStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required"`
}

type UserUpdateResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) SetStatus(c *gin.Context) {
	var req UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("status is required"))
		return
	}

	user, err := h.users.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserUpdateResponse{
		Message: "User status updated",
		User:    user,
	})
}
