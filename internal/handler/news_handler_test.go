package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
	"github.com/VirtuGrowDigital/LucknowZone/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func validationError(t *testing.T) error {
	t.Helper()
	return validation.Errors{
		"category": validation.NewError("invalid_category", "category must be one of the fixed topic tags"),
	}
}

func newNewsRouter(h *NewsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/news", h.List)
	r.GET("/news/paginated", h.ListPaginated)
	r.GET("/news/by-region", h.ListByRegion)
	r.GET("/news/pending", h.ListPending)
	r.GET("/news/dont-miss", h.ListDontMiss)
	r.GET("/news/import", h.Import)
	r.POST("/news", h.Create)
	r.PUT("/news/:id", h.Update)
	r.DELETE("/news/:id", h.Delete)
	r.PUT("/news/toggle/:id", h.ToggleHidden)
	r.PATCH("/news/:id/approve", h.Approve)
	r.PATCH("/news/:id/reject", h.Reject)
	r.PATCH("/news/:id/undo", h.UndoApprove)
	r.PATCH("/news/:id/dont-miss", h.ToggleDontMiss)
	return r
}

func sampleArticle(id string) *domain.Article {
	region := domain.RegionLocal
	category := "Sports"
	return &domain.Article{
		ID:        id,
		Title:     "Stadium reopens",
		Image:     "https://img/1.jpg",
		Category:  &category,
		Region:    &region,
		Status:    domain.StatusApproved,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewsHandler_List(t *testing.T) {
	t.Run("returns the public listing", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().List(mock.Anything, "Sports").
			Return([]domain.Article{*sampleArticle("a1")}, nil)

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/news?category=Sports", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "a1", resp.Data[0].ID)
		assert.Equal(t, "2026-08-01T12:00:00Z", resp.Data[0].CreatedAt)
	})

	t.Run("maps validation failure to 400", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().List(mock.Anything, "Gossip").
			Return(nil, validationError(t))

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/news?category=Gossip", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNewsHandler_ListPaginated(t *testing.T) {
	mockService := mocks.NewMockNewsServiceInterface(t)
	mockService.EXPECT().ListPaginated(mock.Anything, "", 2, 5).
		Return([]domain.Article{*sampleArticle("a6")}, 11, 3, nil)

	router := newNewsRouter(NewNewsHandler(mockService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/paginated?page=2&limit=5", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Total)
	assert.Equal(t, 3, resp.Pages)
	assert.Len(t, resp.Data, 1)
}

func TestNewsHandler_ListPaginated_RejectsMalformedParams(t *testing.T) {
	for _, query := range []string{"page=abc", "limit=abc"} {
		t.Run(query, func(t *testing.T) {
			mockService := mocks.NewMockNewsServiceInterface(t)

			router := newNewsRouter(NewNewsHandler(mockService))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/news/paginated?"+query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockService.AssertNotCalled(t, "ListPaginated")
		})
	}
}

func TestNewsHandler_ListByRegion(t *testing.T) {
	t.Run("defaults to local", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().ListByRegion(mock.Anything, "local").
			Return([]domain.Article{}, nil)

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/news/by-region", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("passes the legacy alias through", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().ListByRegion(mock.Anything, "lucknow").
			Return([]domain.Article{}, nil)

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/news/by-region?region=lucknow", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNewsHandler_Import(t *testing.T) {
	t.Run("reports import counts", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().Import(mock.Anything, "local").
			Return(&domain.ImportResult{Region: domain.RegionLocal, Fetched: 10, Discarded: 4, Duplicates: 2, Imported: 4}, nil)

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/news/import", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp ImportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "local", resp.Region)
		assert.Equal(t, 4, resp.Imported)
	})

	t.Run("missing provider key maps to 503", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().Import(mock.Anything, "local").
			Return(nil, domain.ErrProviderNotConfigured)

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/news/import?region=local", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestNewsHandler_Create(t *testing.T) {
	t.Run("creates a manual article", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(sampleArticle("m1"), nil)

		router := newNewsRouter(NewNewsHandler(mockService))

		body, _ := json.Marshal(CreateNewsRequest{Title: "Stadium reopens", Image: "https://img/1.jpg"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/news", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/news", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNewsHandler_Moderation(t *testing.T) {
	id := uuid.New().String()

	t.Run("approve passes the category through", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().Approve(mock.Anything, id, "Sports").
			Return(sampleArticle(id), nil)

		router := newNewsRouter(NewNewsHandler(mockService))

		body, _ := json.Marshal(ApproveRequest{Category: "Sports"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/news/"+id+"/approve", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("approve rejects a non-UUID id", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		router := newNewsRouter(NewNewsHandler(mockService))

		body, _ := json.Marshal(ApproveRequest{Category: "Sports"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/news/not-a-uuid/approve", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().Reject(mock.Anything, id).
			Return(nil, &domain.InvalidStateError{Op: "reject", Current: domain.StatusApproved, Required: domain.StatusPending})

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/news/"+id+"/reject", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing article maps to 404", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().UndoApprove(mock.Anything, id).
			Return(nil, &domain.NotFoundError{Resource: "article", ID: id})

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/news/"+id+"/undo", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("toggle hidden returns the flipped article", func(t *testing.T) {
		article := sampleArticle(id)
		article.Hidden = true

		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().ToggleHidden(mock.Anything, id).Return(article, nil)

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/news/toggle/"+id, nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Hidden)
	})

	t.Run("policy violation maps to 403", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		mockService.EXPECT().Delete(mock.Anything, id).
			Return(&domain.PolicyError{Op: "deletion"})

		router := newNewsRouter(NewNewsHandler(mockService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/news/"+id, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
