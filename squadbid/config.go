package squadbid

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/squadbid/squadbid/squadbid/database"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log     LogConfig         `toml:"log"`
	Server  ServerConfig      `toml:"server"`
	DB      database.DBConfig `toml:"db"`
	Auction AuctionConfig     `toml:"auction"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ControllerToken string `toml:"controller_token"`
}

// AuctionConfig holds the defaults applied to newly created auctions.
// Every field can be overridden per auction at creation time.
type AuctionConfig struct {
	TimerSeconds       int   `toml:"timer_seconds"`
	TotalPurse         int64 `toml:"total_purse"`
	MinBidAmount       int64 `toml:"min_bid_amount"`
	MinIncrement       int64 `toml:"min_increment"`
	UseBasePrice       bool  `toml:"use_base_price"`
	UseFixedIncrements bool  `toml:"use_fixed_increments"`

	// LockWaitMillis bounds how long a mutation may wait for the
	// per-player section before failing fast with a retryable error.
	LockWaitMillis int `toml:"lock_wait_millis"`
}

func (c ServerConfig) Addr() string {
	host := c.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := c.Port
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf("%s:%d", host, port)
}
