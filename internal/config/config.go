package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all process-wide settings. It is loaded once at startup and
// injected into the services that need it; nothing reads the environment
// after Load returns.
type Config struct {
	Server  ServerConfig  `envconfig:"SERVER"`
	Auction AuctionConfig `envconfig:"AUCTION"`
	Auth    AuthConfig    `envconfig:"AUTH"`
	Log     LogConfig     `envconfig:"LOG"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// AuctionConfig carries the bidding limits shared by the validators and the
// bid acceptance pipeline.
type AuctionConfig struct {
	// MaxBid is the highest amount any single bid or starting price may have.
	MaxBid float64 `envconfig:"MAX_BID" default:"10000"`
	// MaxAuctionTime bounds the exp_time value accepted when listing an item,
	// whatever unit (minutes/hours/days) the seller picks.
	MaxAuctionTime int `envconfig:"MAX_AUCTION_TIME" default:"365"`
}

type AuthConfig struct {
	TokenSecret string        `envconfig:"TOKEN_SECRET" default:"change-me-in-production"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
}

type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if cfg.Auction.MaxBid <= 0 {
		return nil, fmt.Errorf("AUCTION_MAX_BID must be positive, got %v", cfg.Auction.MaxBid)
	}
	if cfg.Auction.MaxAuctionTime <= 0 {
		return nil, fmt.Errorf("AUCTION_MAX_AUCTION_TIME must be positive, got %d", cfg.Auction.MaxAuctionTime)
	}
	if cfg.Auth.TokenSecret == "" {
		return nil, fmt.Errorf("AUTH_TOKEN_SECRET must not be empty")
	}

	return &cfg, nil
}
