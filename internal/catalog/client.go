package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Page is one page of the catalog feed.
type Page struct {
	Games      []Game `json:"games"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}

// Client fetches the paginated GamePix catalog feed.
type Client struct {
	feedURL    string
	sid        string
	pageSize   int
	httpClient *http.Client
}

// NewClient builds a feed client. feedURL is the feed endpoint without query
// parameters; sid is the publisher id.
func NewClient(feedURL, sid string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = 24
	}
	return &Client{
		feedURL:    feedURL,
		sid:        sid,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

// feedGame mirrors the feed's wire format. Ids arrive as numbers or strings
// depending on the game; rating sometimes ships as "quality" and tags as
// "labels".
type feedGame struct {
	ID       flexString `json:"id"`
	Title    string     `json:"title"`
	Category string     `json:"category"`
	Thumb    string     `json:"thumb"`
	URL      string     `json:"url"`
	Tags     []string   `json:"tags"`
	Labels   []string   `json:"labels"`
	Rating   *float64   `json:"rating"`
	Quality  *float64   `json:"quality"`
}

type feedResponse struct {
	Games      []feedGame `json:"games"`
	TotalPages int        `json:"total_pages"`
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// FetchPage fetches one page of the feed. Pages are 1-based.
func (c *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("sid", c.sid)
	q.Set("pagination", strconv.Itoa(c.pageSize))
	q.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL+"?"+q.Encode(), nil)
	if err != nil {
		return Page{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("catalog feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("catalog feed: status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return Page{}, fmt.Errorf("catalog feed: decode: %w", err)
	}

	games := make([]Game, 0, len(feed.Games))
	for _, fg := range feed.Games {
		games = append(games, fg.toGame())
	}

	totalPages := feed.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	return Page{Games: games, Page: page, PageSize: c.pageSize, TotalPages: totalPages}, nil
}

func (fg feedGame) toGame() Game {
	category := fg.Category
	if category == "" {
		category = "Other"
	}
	tags := fg.Tags
	if len(tags) == 0 {
		tags = fg.Labels
	}
	rating := fg.Rating
	if rating == nil {
		rating = fg.Quality
	}
	return Game{
		ID:        string(fg.ID),
		Title:     fg.Title,
		Category:  category,
		Thumbnail: fg.Thumb,
		PlayURL:   fg.URL,
		Tags:      tags,
		Rating:    rating,
	}
}
