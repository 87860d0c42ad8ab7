package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safesteps/internal/models/request_models"
	"safesteps/internal/services"
	"safesteps/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// OpenSession godoc
// @Summary Start a conversation with SafeBot
// @Tags Chat
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Router /chat/sessions [post]
func (cc *ChatController) OpenSession(c *gin.Context) {
	transcript, err := cc.chatService.OpenSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, transcript, "Chat session started")
}

func (cc *ChatController) GetSession(c *gin.Context) {
	transcript, err := cc.chatService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, transcript, "Fetched chat session successfully")
}

// SendMessage godoc
// @Summary Ask SafeBot a question
// @Description Appends the question, waits for the reply and returns both with any speech effect
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Chat session ID"
// @Param request body request_models.SendMessageRequest true "Question"
// @Param X-Client-Capabilities header string false "e.g. speech-synthesis, speech-recognition"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /chat/sessions/{id}/messages [post]
func (cc *ChatController) SendMessage(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	turn, err := cc.chatService.SendMessage(c.Request.Context(), c.Param("id"), req.Text, requestClient(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, turn, "")
}

func (cc *ChatController) ToggleSpeech(c *gin.Context) {
	transcript, err := cc.chatService.ToggleSpeech(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, transcript, "")
}

func (cc *ChatController) Listen(c *gin.Context) {
	resp, err := cc.chatService.Listen(c.Request.Context(), c.Param("id"), requestClient(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (cc *ChatController) Recognition(c *gin.Context) {
	var req request_models.RecognitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid recognition signal")
		return
	}

	turn, err := cc.chatService.Recognition(c.Request.Context(), c.Param("id"), req.Type, req.Transcript, requestClient(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, turn, "")
}

func (cc *ChatController) QuickQuestions(c *gin.Context) {
	utils.RespondSuccess(c, cc.chatService.QuickQuestions(), "Fetched quick questions successfully")
}
