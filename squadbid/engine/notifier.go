package engine

import (
	"context"
	"log/slog"
)

// Notifier receives fire-and-forget announcements of settled outcomes.
// Implementations must not block the caller; failures are logged, never
// propagated, because the transaction has already committed.
type Notifier interface {
	PlayerSold(ctx context.Context, auctionID int64, playerName, teamName string, price int64)
	SaleUndone(ctx context.Context, auctionID int64, playerName, teamName string, price int64)
	AuctionStatusChanged(ctx context.Context, auctionID int64, from, to string)
}

// LogNotifier announces outcomes to the structured log. It is the
// default when no external channel is configured.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) PlayerSold(_ context.Context, auctionID int64, playerName, teamName string, price int64) {
	n.log.Info("player sold",
		slog.Int64("auction_id", auctionID),
		slog.String("player", playerName),
		slog.String("team", teamName),
		slog.Int64("price", price))
}

func (n *LogNotifier) SaleUndone(_ context.Context, auctionID int64, playerName, teamName string, price int64) {
	n.log.Info("sale undone",
		slog.Int64("auction_id", auctionID),
		slog.String("player", playerName),
		slog.String("team", teamName),
		slog.Int64("price", price))
}

func (n *LogNotifier) AuctionStatusChanged(_ context.Context, auctionID int64, from, to string) {
	n.log.Info("auction status changed",
		slog.Int64("auction_id", auctionID),
		slog.String("from", from),
		slog.String("to", to))
}
