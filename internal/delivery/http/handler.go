package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/skykart/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	chatService *usecase.ChatService
	logger      zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(chatService *usecase.ChatService, logger zerolog.Logger) *Handler {
	return &Handler{
		chatService: chatService,
		logger:      logger,
	}
}

// ChatRequest is the chat endpoint payload
type ChatRequest struct {
	Message string `json:"message"`
}

// CompareRequest is the comparison endpoint payload
type CompareRequest struct {
	Drone1 string `json:"drone1"`
	Drone2 string `json:"drone2"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "skykart-backend",
		"version": "1.0.0",
	})
}

// Chat resolves a free-text message to a response. The engine itself is
// total; the only failure mode here is a missing or empty message field.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	response := h.chatService.Respond(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{"response": response})
}

// Compare renders a comparison between two named drones. An unresolvable name
// is a normal response (apology text), never an error status.
func (h *Handler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Drone1) == "" || strings.TrimSpace(req.Drone2) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "drone1 and drone2 are required"})
		return
	}

	comparison := h.chatService.Compare(c.Request.Context(), req.Drone1, req.Drone2)
	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}

// ListDrones returns the full catalog
func (h *Handler) ListDrones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"drones": h.chatService.Drones()})
}
