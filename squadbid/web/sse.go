package web

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/squadbid/squadbid/squadbid/engine"
)

const sseKeepAlive = 15 * time.Second

// StreamEvents serves the per-auction SSE feed. Each broadcast event
// goes out as one SSE message with the engine sequence number as the
// SSE id, so clients can spot gaps and refetch the snapshot.
func StreamEvents(broadcaster *engine.Broadcaster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auctionID, err := auctionIDParam(c)
		if err != nil {
			return SendBadRequest(c, "invalid auction id")
		}

		c.Set("Content-Type", "text/event-stream")
		c.Set("Cache-Control", "no-cache")
		c.Set("Connection", "keep-alive")
		c.Set("X-Accel-Buffering", "no")

		events, cancel := broadcaster.Subscribe(auctionID)

		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			defer cancel()

			slog.Info("sse subscriber connected",
				slog.String("type", "http"),
				slog.Int64("auction_id", auctionID))

			keepAlive := time.NewTicker(sseKeepAlive)
			defer keepAlive.Stop()

			for {
				select {
				case ev, ok := <-events:
					if !ok {
						return
					}
					if err := writeSSE(w, ev); err != nil {
						return
					}
				case <-keepAlive.C:
					// Comment line keeps idle proxies from closing us.
					if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
						return
					}
					if err := w.Flush(); err != nil {
						return
					}
				}
			}
		}))

		return nil
	}
}

func writeSSE(w *bufio.Writer, ev engine.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", ev.Seq, ev.Type, payload); err != nil {
		return err
	}
	return w.Flush()
}
