package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"arcade/backend/internal/catalog"
	"arcade/backend/internal/leaderboard"

	"github.com/gin-gonic/gin"
)

// ArcadeHandler serves the storefront page and the catalog proxy used by the
// load-more button.
type ArcadeHandler struct {
	catalog *catalog.Client
	service *leaderboard.Service
	siteURL string
}

// NewArcadeHandler builds the handler around the feed client and the
// leaderboard service.
func NewArcadeHandler(client *catalog.Client, service *leaderboard.Service, siteURL string) *ArcadeHandler {
	return &ArcadeHandler{catalog: client, service: service, siteURL: siteURL}
}

func filterFromQuery(c *gin.Context) catalog.Filter {
	minRating, _ := strconv.ParseFloat(c.Query("min_rating"), 64)
	return catalog.Filter{
		Query:     c.Query("q"),
		Category:  c.Query("category"),
		Tag:       c.Query("tag"),
		MinRating: minRating,
	}
}

// Home renders the storefront: daily picks, filterable grid, leaderboard
// widget and play modal. Feed and leaderboard outages degrade to an empty
// section rather than an error page.
func (h *ArcadeHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.catalog.FetchPage(ctx, 1)
	if err != nil {
		log.Printf("storefront: catalog feed unavailable: %v", err)
		page = catalog.Page{Page: 1, TotalPages: 1}
	}

	filter := filterFromQuery(c)
	filtered := filter.Apply(page.Games)
	picks := catalog.DailyPicks(page.Games, catalog.DateKey(time.Now()))

	top, err := h.service.TopN(ctx, 10)
	if err != nil {
		// The widget is decoration; the grid must still render.
		log.Printf("storefront: leaderboard unavailable: %v", err)
		top = nil
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"SiteURL":    h.siteURL,
		"DailyPicks": picks,
		"Games":      filtered,
		"Categories": catalog.Categories(page.Games),
		"Tags":       catalog.Tags(page.Games),
		"Filter":     filter,
		"Page":       page.Page,
		"TotalPages": page.TotalPages,
		"Top":        top,
	})
}

// Catalog godoc
// @Summary      Fetch a catalog page
// @Description  Proxies one page of the game feed, with the storefront's filters applied.
// @Tags         catalog
// @Produce      json
// @Param        page       query int    false "Page number" default(1)
// @Param        q          query string false "Search query for title or category"
// @Param        category   query string false "Category filter"
// @Param        tag        query string false "Tag filter"
// @Param        min_rating query number false "Minimum rating"
// @Success      200 {object} PaginatedResponse[catalog.Game]
// @Failure      502 {object} ErrorResponse "Feed unreachable"
// @Router       /catalog [get]
func (h *ArcadeHandler) Catalog(c *gin.Context) {
	pageNum, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || pageNum < 1 {
		pageNum = 1
	}

	page, err := h.catalog.FetchPage(c.Request.Context(), pageNum)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog feed unavailable"})
		return
	}

	games := filterFromQuery(c).Apply(page.Games)
	c.JSON(http.StatusOK, NewPaginatedResponse(games, page.TotalPages, page.Page, page.PageSize))
}
