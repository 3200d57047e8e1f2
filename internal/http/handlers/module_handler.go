package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanpaKamil/admin/internal/models"
	"github.com/TanpaKamil/admin/internal/services"
	"github.com/TanpaKamil/admin/internal/utils"
)

type ModuleHandler struct {
	modules *services.ModuleService
}

type ModuleStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

type ModuleUpdateResponse struct {
	Message string         `json:"message"`
	Module  *models.Module `json:"module"`
}

func NewModuleHandler(modules *services.ModuleService) *ModuleHandler {
	return &ModuleHandler{modules: modules}
}

func (h *ModuleHandler) List(c *gin.Context) {
	summaries, err := h.modules.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *ModuleHandler) GetByID(c *gin.Context) {
	module, err := h.modules.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *ModuleHandler) SetActive(c *gin.Context) {
	var req ModuleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("isActive is required"))
		return
	}

	module, err := h.modules.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModuleUpdateResponse{
		Message: "Module status updated",
		Module:  module,
	})
}

func (h *ModuleHandler) ToggleRecommended(c *gin.Context) {
	module, err := h.modules.ToggleRecommended(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModuleUpdateResponse{
		Message: "Module recommendation updated",
		Module:  module,
	})
}
