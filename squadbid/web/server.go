package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/squadbid/squadbid/squadbid/engine"
)

// NewApp wires the fiber application: middleware, public read routes,
// captain bid routes, and the controller desk behind the token.
func NewApp(h *Handlers, broadcaster *engine.Broadcaster, controllerToken string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "squadbid",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("unhandled handler error",
				slog.String("type", "http"),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()))
			return SendEngineError(c, err)
		},
	})

	app.Use(recover.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, X-Captain-ID, X-Controller-Token",
	}))
	app.Use(LoggingMiddleware())
	app.Use(Identify(controllerToken))

	api := app.Group("/api")

	auctions := api.Group("/auctions")
	auctions.Get("/:id", h.GetSnapshot)
	auctions.Get("/:id/teams/:teamID/purse", h.TeamPurse)
	auctions.Get("/:id/events", StreamEvents(broadcaster))

	// Captains bid for their own team; the controller may bid for any.
	auctions.Post("/:id/bids", h.PlaceBid)

	// Controller desk. The guard sits on each route rather than a group
	// because fiber mounts group middleware by path prefix, which would
	// also cover the public reads above.
	guard := RequireController(controllerToken)
	auctions.Post("/", guard, h.CreateAuction)
	auctions.Post("/:id/teams", guard, h.RegisterTeam)
	auctions.Post("/:id/players", guard, h.EnterPlayers)
	auctions.Delete("/:id/players/:playerID/bids/last", guard, h.UndoLastBid)
	auctions.Post("/:id/sales", guard, h.Sell)
	auctions.Delete("/:id/sales/last", guard, h.UndoSell)
	auctions.Put("/:id/current-player", guard, h.SetCurrentPlayer)
	auctions.Put("/:id/current-player/next", guard, h.NextPlayer)
	auctions.Put("/:id/current-player/previous", guard, h.PreviousPlayer)
	auctions.Patch("/:id/status", guard, h.TransitionStatus)

	return app
}
