package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"safesteps/internal/models/request_models"
	"safesteps/internal/models/response_models"
	"safesteps/internal/services"
	"safesteps/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{quizService: quizService}
}

// StartSession godoc
// @Summary Start a quiz
// @Tags Quiz
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Router /quiz/sessions [post]
func (qc *QuizController) StartSession(c *gin.Context) {
	session, err := qc.quizService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, session, "Quiz started")
}

func (qc *QuizController) GetSession(c *gin.Context) {
	qc.respond(c, qc.quizService.GetSession)
}

// SelectOption godoc
// @Summary Select an answer for the current question
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz session ID"
// @Param request body request_models.SelectOptionRequest true "Option index"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/select [post]
func (qc *QuizController) SelectOption(c *gin.Context) {
	var req request_models.SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid option")
		return
	}

	session, err := qc.quizService.SelectOption(c.Request.Context(), c.Param("id"), *req.Option)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "")
}

func (qc *QuizController) Submit(c *gin.Context) {
	qc.respond(c, qc.quizService.Submit)
}

func (qc *QuizController) Next(c *gin.Context) {
	qc.respond(c, qc.quizService.Next)
}

func (qc *QuizController) Reset(c *gin.Context) {
	qc.respond(c, qc.quizService.Reset)
}

func (qc *QuizController) respond(c *gin.Context, op func(context.Context, string) (*response_models.QuizSessionResponse, error)) {
	session, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "")
}
