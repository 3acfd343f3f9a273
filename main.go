package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/squadbid/squadbid/squadbid"
	"github.com/squadbid/squadbid/squadbid/database"
	"github.com/squadbid/squadbid/squadbid/database/repositories"
	"github.com/squadbid/squadbid/squadbid/engine"
	"github.com/squadbid/squadbid/squadbid/logger"
	"github.com/squadbid/squadbid/squadbid/services"
	"github.com/squadbid/squadbid/squadbid/web"
)

var (
	version = "dev"
	commit  = "unknown"
)

const defaultLockWait = 2 * time.Second

func main() {
	shouldSyncDB := flag.Bool("sync-db", false, "Whether to initialize the database schema")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	customHandler := logger.NewHandler("SquadBid")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting squadbid...",
		slog.String("version", version),
		slog.String("commit", commit),
		slog.String("type", "sys"))

	cfg, err := squadbid.LoadConfig(*path)
	if err != nil {
		logger.LogError("Failed to read config", err)
		os.Exit(-1)
	}
	customHandler.SetLevel(cfg.Log.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slog.Info("Connecting to database...", slog.String("type", "db"))
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		logger.LogError("Failed to connect to database", err)
		os.Exit(-1)
	}
	defer db.Close()

	if *shouldSyncDB {
		slog.Info("Initializing database schema...", slog.String("type", "db"))
		if err := db.InitializeSchema(ctx); err != nil {
			slog.Error("Failed to initialize schema", slog.Any("err", err))
			os.Exit(-1)
		}
	}

	auctionRepo := repositories.NewAuctionRepository(db.BunDB())
	teamRepo := repositories.NewTeamRepository(db.BunDB())
	playerRepo := repositories.NewPlayerRepository(db.BunDB())
	bidRepo := repositories.NewBidRepository(db.BunDB())

	lockWait := defaultLockWait
	if cfg.Auction.LockWaitMillis > 0 {
		lockWait = time.Duration(cfg.Auction.LockWaitMillis) * time.Millisecond
	}

	broadcaster := engine.NewBroadcaster(slog.Default())
	timer := engine.NewTimer(broadcaster)
	notifier := engine.NewLogNotifier(slog.Default())
	locks := engine.NewKeyedLocks(lockWait)

	manager := engine.NewManager(
		auctionRepo, teamRepo, playerRepo, bidRepo,
		locks, broadcaster, timer, notifier, slog.Default(),
	)
	snapshots := engine.NewSnapshotService(auctionRepo, teamRepo, playerRepo, bidRepo)

	profiles, err := services.NewCachedProfiles(services.EchoProfiles{}, 1024, slog.Default())
	if err != nil {
		slog.Error("Failed to build profile cache", slog.Any("err", err))
		os.Exit(-1)
	}

	defaults := engine.Defaults{
		TimerSeconds:       cfg.Auction.TimerSeconds,
		TotalPurse:         cfg.Auction.TotalPurse,
		MinBidAmount:       cfg.Auction.MinBidAmount,
		MinIncrement:       cfg.Auction.MinIncrement,
		UseBasePrice:       cfg.Auction.UseBasePrice,
		UseFixedIncrements: cfg.Auction.UseFixedIncrements,
	}

	handlers := web.NewHandlers(manager, snapshots, teamRepo, profiles, defaults)
	app := web.NewApp(handlers, broadcaster, cfg.Server.ControllerToken)

	go func() {
		slog.Info("HTTP server listening",
			slog.String("type", "http"),
			slog.String("addr", cfg.Server.Addr()))
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			slog.Error("HTTP server stopped", slog.Any("err", err))
			os.Exit(-1)
		}
	}()

	logger.LogSystem("Squadbid is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-s

	slog.Info("Shutting down...", slog.String("type", "sys"))
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", slog.Any("err", err))
	}
}
