// This file serves the live change stream. Every store mutation publishes a
// small JSON event on the hub; GET /changes relays those events to clients as
// Server-Sent Events so open screens can refresh without polling.

package handlers

import (
	"bufio"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/trentd187/golf-companion/internal/hub"
)

// keepAlive is how often an idle change stream sends a comment line, so
// proxies don't close it.
const keepAlive = 15 * time.Second

// StreamChanges handles GET /changes?topic=. It streams change events as
// Server-Sent Events: one "data:" line of JSON per event. Without a topic
// the client receives every topic.
//
// Each connection registers its own hub client. The stream ends when the
// client disconnects (the next write fails) or when the hub drops the client
// for falling behind (its Send channel closes).
func StreamChanges(h *hub.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		topic := c.Query("topic", hub.TopicAll)
		client := hub.NewClient(topic, 32)
		h.Register(client)

		c.Set("Content-Type", "text/event-stream")
		c.Set("Cache-Control", "no-cache")
		c.Set("Connection", "keep-alive")
		c.Set("X-Accel-Buffering", "no")

		// The stream writer runs after this handler returns, on fasthttp's
		// goroutine for the connection.
		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			defer h.Unregister(client)

			ticker := time.NewTicker(keepAlive)
			defer ticker.Stop()

			fmt.Fprintf(w, ": subscribed to %s\n\n", topic)
			if err := w.Flush(); err != nil {
				return
			}
			for {
				select {
				case data, ok := <-client.Send:
					if !ok {
						return
					}
					fmt.Fprintf(w, "data: %s\n\n", data)
				case <-ticker.C:
					fmt.Fprint(w, ": ping\n\n")
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}))
		return nil
	}
}
