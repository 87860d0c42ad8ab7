package controllers

import (
	"github.com/gin-gonic/gin"

	"safesteps/internal/services"
	"safesteps/pkg/utils"
)

type PageController struct {
	pageService services.PageServiceInterface
}

func NewPageController(pageService services.PageServiceInterface) *PageController {
	return &PageController{pageService: pageService}
}

// Page godoc
// @Summary Static page content
// @Description Hero copy, disaster categories, suggested questions and footer stats
// @Tags Page
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /page [get]
func (pc *PageController) Page(c *gin.Context) {
	utils.RespondSuccess(c, pc.pageService.Page(c.Request.Context()), "")
}

func (pc *PageController) Categories(c *gin.Context) {
	utils.RespondSuccess(c, pc.pageService.Categories(c.Request.Context()), "Fetched categories successfully")
}
