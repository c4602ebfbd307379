package middlewares

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request with timing.
func RequestLogger(ctx *gin.Context) {
	start := time.Now()

	ctx.Next()

	log.WithFields(log.Fields{
		"method":  ctx.Request.Method,
		"path":    ctx.Request.URL.Path,
		"status":  ctx.Writer.Status(),
		"latency": time.Since(start).String(),
	}).Info("HTTP Request")
}
