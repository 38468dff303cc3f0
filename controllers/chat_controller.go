package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/models"
)

type ChatController struct {
	client *http.Client
}

func NewChatController() *ChatController {
	return &ChatController{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// extractReply pulls the completion text out of an upstream response body.
func extractReply(body []byte) (string, error) {
	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Chat godoc
// @Summary Chat with the store assistant
// @Description Forward a message to the completion provider and relay the reply verbatim
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat Request"
// @Success 200 {object} models.ChatResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/chat [post]
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Message is required"})
		return
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model:    config.AppConfig.ChatModel,
		Messages: []chatMessage{{Role: "user", Content: req.Message}},
	})
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Chatbot failed to respond"})
		return
	}

	upstreamReq, err := http.NewRequestWithContext(c.Request.Context(),
		http.MethodPost, config.AppConfig.OpenRouterURL, bytes.NewReader(payload))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Chatbot failed to respond"})
		return
	}
	upstreamReq.Header.Set("Authorization", "Bearer "+config.AppConfig.OpenRouterAPIKey)
	upstreamReq.Header.Set("Content-Type", "application/json")

	resp, err := ctrl.client.Do(upstreamReq)
	if err != nil {
		log.Println("Chat error:", err)
		c.JSON(502, gin.H{"success": false, "message": "Chatbot failed to respond"})
		return
	}
	defer resp.Body.Close()

	// Provider error bodies are logged but never forwarded to the client.
	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		log.Printf("Chat error: upstream status %d", resp.StatusCode)
		c.JSON(502, gin.H{"success": false, "message": "Chatbot failed to respond"})
		return
	}

	reply, err := extractReply(body)
	if err != nil {
		log.Println("Chat error:", err)
		c.JSON(502, gin.H{"success": false, "message": "Chatbot failed to respond"})
		return
	}

	c.JSON(200, gin.H{"reply": reply})
}
