package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"arcade/backend/internal/hub"
	"arcade/backend/internal/leaderboard"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler serves the play-count API and the live event stream.
type LeaderboardHandler struct {
	service *leaderboard.Service
	hub     *hub.Hub
}

// NewLeaderboardHandler builds the handler around an already constructed
// service and hub.
func NewLeaderboardHandler(service *leaderboard.Service, h *hub.Hub) *LeaderboardHandler {
	return &LeaderboardHandler{service: service, hub: h}
}

// region --- DTOs ---

// PlayInput is the body of a play-recording request.
type PlayInput struct {
	ID        string `json:"id" binding:"required" example:"12345"`
	Title     string `json:"title" binding:"required" example:"Neon Racer"`
	Thumbnail string `json:"thumbnail" example:"https://img.gamepix.com/games/neon-racer.png"`
}

// TopResponse wraps the ranked entries.
type TopResponse struct {
	Items []leaderboard.Entry `json:"items"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// RecordPlay godoc
// @Summary      Record a play
// @Description  Upserts the leaderboard entry for a game: first play creates it with plays=1, later plays increment the counter and refresh title/thumbnail.
// @Tags         leaderboard
// @Accept       json
// @Produce      json
// @Param        input body PlayInput true "Played game"
// @Success      200 {object} map[string]bool "{"ok": true}"
// @Failure      400 {object} ErrorResponse "Missing id/title"
// @Failure      500 {object} ErrorResponse "No provider accepted the write"
// @Router       /leaderboard/play [post]
func (h *LeaderboardHandler) RecordPlay(c *gin.Context) {
	var input PlayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id/title"})
		return
	}

	err := h.service.RecordPlay(c.Request.Context(), input.ID, input.Title, input.Thumbnail)
	if err != nil {
		if errors.Is(err, leaderboard.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Top godoc
// @Summary      Get the leaderboard
// @Description  Returns up to n entries ordered by play count descending. An empty board is a 200 with an empty list.
// @Tags         leaderboard
// @Produce      json
// @Param        n query int false "Number of entries" default(10)
// @Success      200 {object} TopResponse
// @Failure      500 {object} ErrorResponse "Provider unreachable"
// @Router       /leaderboard/top [get]
func (h *LeaderboardHandler) Top(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "10"))
	if err != nil || n < 1 {
		n = 10
	}
	if n > 100 {
		n = 100
	}

	items, err := h.service.TopN(c.Request.Context(), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []leaderboard.Entry{}
	}

	c.JSON(http.StatusOK, TopResponse{Items: items})
}

// Events streams recorded plays as server-sent events for the storefront's
// live leaderboard widget.
func (h *LeaderboardHandler) Events(c *gin.Context) {
	client := h.hub.Subscribe()
	defer h.hub.Unsubscribe(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("play", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
