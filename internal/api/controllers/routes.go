package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"safesteps/pkg/utils"
)

// Controllers groups every handler set so fx can hand them to the router in one piece.
type Controllers struct {
	fx.In

	Page      *PageController
	Chat      *ChatController
	Quiz      *QuizController
	Checklist *ChecklistController
	Contacts  *ContactsController
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})

	r.GET("/page", ctrl.Page.Page)
	r.GET("/categories", ctrl.Page.Categories)

	chatGroup := r.Group("/chat")
	chatGroup.GET("/quick-questions", ctrl.Chat.QuickQuestions)
	chatGroup.POST("/sessions", ctrl.Chat.OpenSession)
	chatGroup.GET("/sessions/:id", ctrl.Chat.GetSession)
	chatGroup.POST("/sessions/:id/messages", ctrl.Chat.SendMessage)
	chatGroup.POST("/sessions/:id/speech", ctrl.Chat.ToggleSpeech)
	chatGroup.POST("/sessions/:id/listen", ctrl.Chat.Listen)
	chatGroup.POST("/sessions/:id/recognition", ctrl.Chat.Recognition)

	quizGroup := r.Group("/quiz")
	quizGroup.POST("/sessions", ctrl.Quiz.StartSession)
	quizGroup.GET("/sessions/:id", ctrl.Quiz.GetSession)
	quizGroup.POST("/sessions/:id/select", ctrl.Quiz.SelectOption)
	quizGroup.POST("/sessions/:id/submit", ctrl.Quiz.Submit)
	quizGroup.POST("/sessions/:id/next", ctrl.Quiz.Next)
	quizGroup.POST("/sessions/:id/reset", ctrl.Quiz.Reset)

	checklistGroup := r.Group("/checklist")
	checklistGroup.GET("/export", ctrl.Checklist.Export)
	checklistGroup.POST("/sessions", ctrl.Checklist.StartSession)
	checklistGroup.GET("/sessions/:id", ctrl.Checklist.GetSession)
	checklistGroup.POST("/sessions/:id/toggle", ctrl.Checklist.ToggleItem)
	checklistGroup.POST("/sessions/:id/reset", ctrl.Checklist.Reset)
	checklistGroup.PUT("/sessions/:id/filter", ctrl.Checklist.SetFilter)

	contactsGroup := r.Group("/contacts")
	contactsGroup.GET("", ctrl.Contacts.Directory)
	contactsGroup.POST("/call", ctrl.Contacts.Call)
	contactsGroup.POST("/share", ctrl.Contacts.Share)
	contactsGroup.GET("/export", ctrl.Contacts.Export)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})
}
