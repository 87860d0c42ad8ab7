package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safesteps/internal/models/request_models"
	"safesteps/internal/services"
	"safesteps/pkg/utils"
)

type ContactsController struct {
	contactService services.ContactServiceInterface
}

func NewContactsController(contactService services.ContactServiceInterface) *ContactsController {
	return &ContactsController{contactService: contactService}
}

func (cc *ContactsController) Directory(c *gin.Context) {
	utils.RespondSuccess(c, cc.contactService.Directory(c.Request.Context()), "Fetched contacts successfully")
}

// Call godoc
// @Summary Decide how the client should call a number
// @Description Touch devices get a tel: link, everything else copies the number
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body request_models.CallRequest true "Contact"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /contacts/call [post]
func (cc *ContactsController) Call(c *gin.Context) {
	var req request_models.CallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and number are required")
		return
	}
	utils.RespondSuccess(c, cc.contactService.Call(c.Request.Context(), requestClient(c), req.Name, req.Number), "")
}

func (cc *ContactsController) Share(c *gin.Context) {
	var req request_models.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid url is required")
		return
	}
	utils.RespondSuccess(c, cc.contactService.Share(c.Request.Context(), requestClient(c), req.URL), "")
}

func (cc *ContactsController) Export(c *gin.Context) {
	filename, body := cc.contactService.Export(c.Request.Context())
	utils.RespondText(c, filename, body)
}
