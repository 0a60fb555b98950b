package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"
)

func LoggingMiddleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		zlog.Logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// ViewStore is the rendered-view cache CacheView reads and writes.
type ViewStore interface {
	Get(ctx context.Context, path string) ([]byte, bool)
	Set(ctx context.Context, path string, payload []byte)
}

// CacheView serves a GET endpoint from the rendered-view cache under the
// given view path and populates the entry on miss. Only the default
// render is cached: requests carrying a query string pass through, so a
// paginated or filtered read never shadows the canonical one. Mutations
// drop the entry through the entity→view dependency graph, which names
// the same path.
func CacheView(store ViewStore, path string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if store == nil || c.Request.Method != http.MethodGet || c.Request.URL.RawQuery != "" {
			c.Next()
			return
		}

		if payload, ok := store.Get(c.Request.Context(), path); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w
		c.Next()

		if w.Status() == http.StatusOK {
			store.Set(c.Request.Context(), path, w.body.Bytes())
		}
	}
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
