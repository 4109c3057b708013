package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const feedPage = `{
	"games": [
		{"id": 101, "title": "Neon Racer", "category": "Racing", "thumb": "https://img.example/101.png", "url": "https://play.example/101", "tags": ["cars"], "rating": 88},
		{"id": "blob-jump", "title": "Blob Jump", "thumb": "https://img.example/blob.png", "url": "https://play.example/blob", "labels": ["casual", "jumping"], "quality": 72.5}
	],
	"total_pages": 5
}`

func TestFetchPageMapsFeedFields(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"sid":        r.URL.Query().Get("sid"),
			"pagination": r.URL.Query().Get("pagination"),
			"page":       r.URL.Query().Get("page"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedPage))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "49715", 24)
	page, err := client.FetchPage(context.Background(), 2)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}

	want := map[string]string{"sid": "49715", "pagination": "24", "page": "2"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if page.TotalPages != 5 || page.Page != 2 || page.PageSize != 24 {
		t.Errorf("page meta = %d/%d size %d, want 2/5 size 24", page.Page, page.TotalPages, page.PageSize)
	}
	if len(page.Games) != 2 {
		t.Fatalf("len(games) = %d, want 2", len(page.Games))
	}

	first := page.Games[0]
	if first.ID != "101" {
		t.Errorf("numeric id mapped to %q, want %q", first.ID, "101")
	}
	if first.Category != "Racing" || first.PlayURL != "https://play.example/101" {
		t.Errorf("unexpected mapping: %+v", first)
	}
	if first.Rating == nil || *first.Rating != 88 {
		t.Errorf("rating = %v, want 88", first.Rating)
	}

	second := page.Games[1]
	if second.ID != "blob-jump" {
		t.Errorf("string id mapped to %q", second.ID)
	}
	if second.Category != "Other" {
		t.Errorf("missing category mapped to %q, want Other", second.Category)
	}
	if len(second.Tags) != 2 || second.Tags[0] != "casual" {
		t.Errorf("labels not used as tag fallback: %v", second.Tags)
	}
	if second.Rating == nil || *second.Rating != 72.5 {
		t.Errorf("quality not used as rating fallback: %v", second.Rating)
	}
}

func TestFetchPageFeedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "49715", 24)
	if _, err := client.FetchPage(context.Background(), 1); err == nil {
		t.Fatal("expected error for feed 500, got nil")
	}
}

func TestFetchPageClampsPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "1" {
			t.Errorf("page query = %q, want 1", got)
		}
		w.Write([]byte(`{"games": [], "total_pages": 0}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "49715", 24)
	page, err := client.FetchPage(context.Background(), -3)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if page.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want clamp to 1", page.TotalPages)
	}
	if len(page.Games) != 0 {
		t.Errorf("expected empty page, got %d games", len(page.Games))
	}
}
