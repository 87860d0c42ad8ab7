package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safesteps/internal/models/request_models"
	"safesteps/internal/services"
	"safesteps/pkg/utils"
)

type ChecklistController struct {
	checklistService services.ChecklistServiceInterface
}

func NewChecklistController(checklistService services.ChecklistServiceInterface) *ChecklistController {
	return &ChecklistController{checklistService: checklistService}
}

func (cc *ChecklistController) StartSession(c *gin.Context) {
	state, err := cc.checklistService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, state, "Checklist started")
}

// GetSession godoc
// @Summary Get checklist progress
// @Tags Checklist
// @Produce json
// @Param id path string true "Checklist session ID"
// @Param category query string false "home, kit, vehicle or digital"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /checklist/sessions/{id} [get]
func (cc *ChecklistController) GetSession(c *gin.Context) {
	state, err := cc.checklistService.GetSession(c.Request.Context(), c.Param("id"), c.Query("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

// ToggleItem godoc
// @Summary Check or uncheck an item
// @Tags Checklist
// @Accept json
// @Produce json
// @Param id path string true "Checklist session ID"
// @Param request body request_models.ToggleItemRequest true "Item"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /checklist/sessions/{id}/toggle [post]
func (cc *ChecklistController) ToggleItem(c *gin.Context) {
	var req request_models.ToggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state, err := cc.checklistService.ToggleItem(c.Request.Context(), c.Param("id"), req.ItemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (cc *ChecklistController) Reset(c *gin.Context) {
	state, err := cc.checklistService.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (cc *ChecklistController) SetFilter(c *gin.Context) {
	var req request_models.SetFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unknown checklist category")
		return
	}

	state, err := cc.checklistService.SetFilter(c.Request.Context(), c.Param("id"), req.Category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

// Export godoc
// @Summary Download the checklist as plain text
// @Tags Checklist
// @Produce plain
// @Success 200 {string} string
// @Router /checklist/export [get]
func (cc *ChecklistController) Export(c *gin.Context) {
	filename, body := cc.checklistService.Export(c.Request.Context())
	utils.RespondText(c, filename, body)
}
