package controllers

import (
	"net/http"

	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AssistantController struct {
	Assistant *services.AssistantService
}

func NewAssistantController(assistant *services.AssistantService) *AssistantController {
	return &AssistantController{Assistant: assistant}
}

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// Chat answers a meal-planning question. A model failure degrades to
// an error message; the conversation flow never crashes.
func (ac *AssistantController) Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := ac.Assistant.Chat(input.Message)
	if err != nil {
		config.Log.Warn("chat request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Sorry, I encountered an error. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
