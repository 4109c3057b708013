package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arcade/backend/internal/catalog"
	"arcade/backend/internal/leaderboard"

	"github.com/gin-gonic/gin"
)

const arcadeFeedPage = `{
	"games": [
		{"id": 1, "title": "Neon Racer", "category": "Racing", "thumb": "t1.png", "url": "u1"},
		{"id": 2, "title": "Puzzle Pop", "category": "Puzzle", "thumb": "t2.png", "url": "u2"}
	],
	"total_pages": 3
}`

func newCatalogRouter(feedURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	client := catalog.NewClient(feedURL, "49715", 24)
	svc := leaderboard.NewService([]leaderboard.Store{leaderboard.NewMemoryStore()})
	h := NewArcadeHandler(client, svc, "http://localhost:8080")

	router := gin.New()
	router.GET("/catalog", h.Catalog)
	return router
}

func TestCatalogEndpoint(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(arcadeFeedPage))
	}))
	defer feed.Close()

	router := newCatalogRouter(feed.URL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog?page=2", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	var resp PaginatedResponse[catalog.Game]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("len(data) = %d, want 2", len(resp.Data))
	}
	if resp.Meta.TotalPages != 3 || resp.Meta.CurrentPage != 2 || resp.Meta.PageSize != 24 {
		t.Errorf("meta = %+v, want 2/3 size 24", resp.Meta)
	}
}

func TestCatalogEndpointAppliesFilters(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(arcadeFeedPage))
	}))
	defer feed.Close()

	router := newCatalogRouter(feed.URL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog?category=Puzzle", nil))

	var resp PaginatedResponse[catalog.Game]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Title != "Puzzle Pop" {
		t.Errorf("data = %v, want only Puzzle Pop", resp.Data)
	}
}

func TestCatalogEndpointFeedDown(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer feed.Close()

	router := newCatalogRouter(feed.URL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}
