package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger attaches a request-scoped zerolog logger to the request context and logs every request once it
// has been served.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		rid := req.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.Must(uuid.NewV4()).String()
		}
		c.Header(requestIDHeader, rid)

		logger := log.With().
			Str("request_id", rid).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("remote_ip", c.ClientIP()).
			Logger()

		c.Request = req.WithContext(logger.WithContext(req.Context()))

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		if status >= http.StatusInternalServerError {
			logger.Error().
				Int("status", status).
				Dur("duration", duration).
				Msg("http request failed")
			return
		}

		logger.Info().
			Int("status", status).
			Dur("duration", duration).
			Msg("http request served")
	}
}

// HandlePanics answers 500 without leaking the panic value to the client.
func HandlePanics() gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Msg("recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}
