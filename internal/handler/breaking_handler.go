package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
	"github.com/VirtuGrowDigital/LucknowZone/internal/service"
)

// BreakingHandler handles breaking-news ticker HTTP requests.
type BreakingHandler struct {
	breakingService service.BreakingServiceInterface
}

// NewBreakingHandler creates a new BreakingHandler.
func NewBreakingHandler(breakingService service.BreakingServiceInterface) *BreakingHandler {
	return &BreakingHandler{breakingService: breakingService}
}

// BreakingItemResponse represents one ticker item in the API response.
type BreakingItemResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

// BreakingCreateRequest is the body for adding a ticker item.
type BreakingCreateRequest struct {
	Text string `json:"text"`
}

func toBreakingItemResponse(item *domain.BreakingNewsItem) BreakingItemResponse {
	return BreakingItemResponse{
		ID:        item.ID,
		Text:      item.Text,
		Active:    item.Active,
		CreatedAt: item.CreatedAt.Format(TimeFormat),
	}
}

// List handles GET /news/breaking
func (h *BreakingHandler) List(c *gin.Context) {
	items, err := h.breakingService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]BreakingItemResponse, len(items))
	for i := range items {
		responses[i] = toBreakingItemResponse(&items[i])
	}
	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// Create handles POST /news/breaking
func (h *BreakingHandler) Create(c *gin.Context) {
	var req BreakingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.breakingService.Create(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBreakingItemResponse(item))
}

// Toggle handles PATCH /news/breaking/:id/toggle
func (h *BreakingHandler) Toggle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	item, err := h.breakingService.Toggle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBreakingItemResponse(item))
}

// Delete handles DELETE /news/breaking/:id
func (h *BreakingHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.breakingService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "breaking news item deleted"})
}
