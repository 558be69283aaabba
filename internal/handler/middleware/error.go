package middleware

import (
	"log/slog"
	"net/http"

	"brainbox-retailplus/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the newest public error attached by httperr, and falls back to a
// generic 500 for handlers that aborted without writing.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if pub := c.Errors.ByType(gin.ErrorTypePublic).Last(); pub != nil {
			if resp, ok := pub.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if private := c.Errors.ByType(gin.ErrorTypePrivate).Last(); private != nil {
			slog.ErrorContext(c.Request.Context(), "unhandled request error",
				"error", private.Err, "path", c.FullPath())
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec, "method", c.Request.Method, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = httperr.MsgInternal
	return resp
}
