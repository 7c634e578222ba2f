package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// ipHasher hashes client addresses with a per-process salt so logs can
// group requests from one visitor without storing the address.
type ipHasher struct {
	salt string
}

func newIPHasher() (*ipHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Wrap(err, "generating ip salt")
	}
	return &ipHasher{salt: hex.EncodeToString(b)}, nil
}

func (h *ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Skip logging for static files and scrapes
func quietPath(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/metrics" ||
		path == "/healthz"
}

// requestLogger logs every request and records it in metrics. The client
// hash is left out when the browser sends Do Not Track.
func requestLogger(logger *zap.Logger, hasher *ipHasher, m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		m.observeRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), elapsed)

		path := c.Request.URL.Path
		if quietPath(path) {
			return
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", elapsed),
			zap.String("request_id", c.GetString("request_id")),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("client", hasher.hash(c.ClientIP())))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", fields...)
		case strings.HasPrefix(path, "/ui/"):
			// navbar events fire on every scroll
			logger.Debug("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
