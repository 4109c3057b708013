package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"arcade/backend/internal/catalog"
	"arcade/backend/internal/config"
	"arcade/backend/internal/handler"
	"arcade/backend/internal/hub"
	"arcade/backend/internal/leaderboard"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "arcade/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Arcade API
// @version         1.0
// @description     Leaderboard and catalog API for the GamePix arcade storefront.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg := config.LoadConfig()

	stores := buildStores(context.Background(), cfg)

	playHub := hub.NewHub()
	service := leaderboard.NewService(stores, leaderboard.WithNotify(func(e leaderboard.Entry) {
		playHub.Broadcast(hub.Event{Type: "play", Payload: e})
	}))
	defer service.Close()

	feed := catalog.NewClient(cfg.GamePixFeedURL, cfg.GamePixSID, cfg.GamePixPageSize)

	leaderboardHandler := handler.NewLeaderboardHandler(service, playHub)
	arcadeHandler := handler.NewArcadeHandler(feed, service, cfg.SiteURL)

	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.LoadHTMLGlob("web/templates/*")

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Storefront
	router.GET("/", arcadeHandler.Home)
	router.GET("/catalog", arcadeHandler.Catalog)

	// Leaderboard API
	board := router.Group("/leaderboard")
	{
		board.POST("/play", leaderboardHandler.RecordPlay)
		board.GET("/top", leaderboardHandler.Top)
		board.GET("/events", leaderboardHandler.Events)
	}

	fmt.Printf("Server is running on :%s\n", cfg.Port)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}

// buildStores constructs the provider list in fallback order: the configured
// primary first, the alternate second. A provider that cannot be constructed
// (missing credentials, unreachable database) is logged and skipped, which is
// what lets the write path fall back per the service contract.
func buildStores(ctx context.Context, cfg *config.Config) []leaderboard.Store {
	order := []string{"supabase", "firestore"}
	if cfg.LeaderboardProvider == "firestore" {
		order = []string{"firestore", "supabase"}
	} else if cfg.LeaderboardProvider != "supabase" && cfg.LeaderboardProvider != "" {
		log.Printf("leaderboard: unknown provider %q, defaulting to supabase", cfg.LeaderboardProvider)
	}

	var stores []leaderboard.Store
	for _, name := range order {
		var (
			store leaderboard.Store
			err   error
		)
		switch name {
		case "supabase":
			store, err = leaderboard.NewSupabaseStore(cfg.SupabaseDBURL)
		case "firestore":
			store, err = leaderboard.NewFirestoreStore(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
		}
		if err != nil {
			log.Printf("leaderboard: provider %s disabled: %v", name, err)
			continue
		}
		stores = append(stores, store)
	}
	if len(stores) == 0 {
		log.Println("Warning: no leaderboard provider configured; plays will not be recorded")
	}
	return stores
}
