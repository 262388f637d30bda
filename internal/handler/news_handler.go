package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
	"github.com/VirtuGrowDigital/LucknowZone/internal/service"
)

// NewsHandler handles article-related HTTP requests.
type NewsHandler struct {
	newsService service.NewsServiceInterface
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsServiceInterface) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    *string `json:"category,omitempty"`
	Region      *string `json:"region,omitempty"`
	Status      string  `json:"status"`
	IsAPI       bool    `json:"is_api"`
	Hidden      bool    `json:"hidden"`
	IsDontMiss  bool    `json:"is_dont_miss"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ListResponse wraps an article listing.
type ListResponse struct {
	Data []ArticleResponse `json:"data"`
}

// PaginatedResponse wraps one page of articles with totals.
type PaginatedResponse struct {
	Data  []ArticleResponse `json:"data"`
	Total int               `json:"total"`
	Pages int               `json:"pages"`
}

// ImportResponse reports the outcome of a provider import.
type ImportResponse struct {
	Region     string `json:"region"`
	Fetched    int    `json:"fetched"`
	Discarded  int    `json:"discarded"`
	Duplicates int    `json:"duplicates"`
	Imported   int    `json:"imported"`
}

// CreateNewsRequest is the body for manually publishing an article.
type CreateNewsRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    *string `json:"category"`
	Region      *string `json:"region"`
}

// UpdateNewsRequest is the body for a partial article edit. Absent
// fields are left unchanged.
type UpdateNewsRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Region      *string `json:"region"`
}

// ApproveRequest is the body for approving a pending article.
type ApproveRequest struct {
	Category string `json:"category"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	response := ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		Category:    a.Category,
		Status:      string(a.Status),
		IsAPI:       a.IsAPI,
		Hidden:      a.Hidden,
		IsDontMiss:  a.IsDontMiss,
		CreatedAt:   a.CreatedAt.Format(TimeFormat),
		UpdatedAt:   a.UpdatedAt.Format(TimeFormat),
	}
	if a.Region != nil {
		region := string(*a.Region)
		response.Region = &region
	}
	return response
}

func toArticleResponses(articles []domain.Article) []ArticleResponse {
	responses := make([]ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = toArticleResponse(&articles[i])
	}
	return responses
}

// List handles GET /news
func (h *NewsHandler) List(c *gin.Context) {
	articles, err := h.newsService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Data: toArticleResponses(articles)})
}

// ListPaginated handles GET /news/paginated
func (h *NewsHandler) ListPaginated(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	articles, total, pages, err := h.newsService.ListPaginated(c.Request.Context(), c.Query("category"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PaginatedResponse{
		Data:  toArticleResponses(articles),
		Total: total,
		Pages: pages,
	})
}

// ListByRegion handles GET /news/by-region
func (h *NewsHandler) ListByRegion(c *gin.Context) {
	region := c.DefaultQuery("region", string(domain.RegionLocal))

	articles, err := h.newsService.ListByRegion(c.Request.Context(), region)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Data: toArticleResponses(articles)})
}

// ListPending handles GET /news/pending
func (h *NewsHandler) ListPending(c *gin.Context) {
	articles, err := h.newsService.ListPending(c.Request.Context(), c.Query("region"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Data: toArticleResponses(articles)})
}

// ListDontMiss handles GET /news/dont-miss
func (h *NewsHandler) ListDontMiss(c *gin.Context) {
	articles, err := h.newsService.ListDontMiss(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Data: toArticleResponses(articles)})
}

// Import handles GET /news/import
func (h *NewsHandler) Import(c *gin.Context) {
	region := c.DefaultQuery("region", string(domain.RegionLocal))

	result, err := h.newsService.Import(c.Request.Context(), region)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ImportResponse{
		Region:     string(result.Region),
		Fetched:    result.Fetched,
		Discarded:  result.Discarded,
		Duplicates: result.Duplicates,
		Imported:   result.Imported,
	})
}

// Create handles POST /news
func (h *NewsHandler) Create(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article := &domain.Article{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
	}
	if req.Region != nil {
		region := domain.Region(*req.Region)
		if normalized, ok := domain.NormalizeRegion(*req.Region); ok {
			region = normalized
		}
		article.Region = &region
	}

	created, err := h.newsService.Create(c.Request.Context(), article)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toArticleResponse(created))
}

// Update handles PUT /news/:id
func (h *NewsHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	upd := domain.ArticleUpdate{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
	}
	if req.Region != nil {
		region := domain.Region(*req.Region)
		if normalized, ok := domain.NormalizeRegion(*req.Region); ok {
			region = normalized
		}
		upd.Region = &region
	}

	article, err := h.newsService.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

// Approve handles PATCH /news/:id/approve
func (h *NewsHandler) Approve(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.newsService.Approve(c.Request.Context(), id, req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Reject handles PATCH /news/:id/reject
func (h *NewsHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.newsService.Reject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// UndoApprove handles PATCH /news/:id/undo
func (h *NewsHandler) UndoApprove(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.newsService.UndoApprove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// ToggleHidden handles PUT /news/toggle/:id
func (h *NewsHandler) ToggleHidden(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.newsService.ToggleHidden(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// ToggleDontMiss handles PATCH /news/:id/dont-miss
func (h *NewsHandler) ToggleDontMiss(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.newsService.ToggleDontMiss(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}
