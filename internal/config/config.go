package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port string `mapstructure:"PORT"`

	// Leaderboard persistence. Provider is "supabase" or "firestore"; the
	// other provider acts as the write-path fallback when configured.
	LeaderboardProvider string `mapstructure:"LEADERBOARD_PROVIDER"`
	SupabaseDBURL       string `mapstructure:"SUPABASE_DB_URL"`
	FirebaseProjectID   string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentials string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// GamePix catalog feed.
	GamePixSID      string `mapstructure:"GAMEPIX_SID"`
	GamePixPageSize int    `mapstructure:"GAMEPIX_PAGE_SIZE"`
	GamePixFeedURL  string `mapstructure:"GAMEPIX_FEED_URL"`

	SiteURL string `mapstructure:"SITE_URL"`
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() *Config {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LEADERBOARD_PROVIDER", "supabase")
	viper.SetDefault("GAMEPIX_SID", "49715")
	viper.SetDefault("GAMEPIX_PAGE_SIZE", 24)
	viper.SetDefault("GAMEPIX_FEED_URL", "https://feeds.gamepix.com/v2/json")
	viper.SetDefault("SITE_URL", "http://localhost:8080")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	return cfg
}
