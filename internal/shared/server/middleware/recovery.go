package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"smarthrms/internal/shared/server/respond"
	"smarthrms/internal/shared/telemetry"
)

// Recovery turns a panic into a 500 envelope. The log line carries the
// route and any task or employee the handler was working on.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			fields := map[string]any{
				"request_id": RequestIDFromContext(c),
				"error":      rec,
				"stack":      string(debug.Stack()),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"route":      c.FullPath(),
			}
			if id := c.GetString(TaskIDKey); id != "" {
				fields["task_id"] = id
			}
			if id := c.GetString(EmployeeIDKey); id != "" {
				fields["employee_id"] = id
			}
			telemetry.Error("panic", fields)
			if !c.Writer.Written() {
				respond.Error(c, http.StatusInternalServerError, "internal", "unexpected server error", nil)
			}
			c.Abort()
		}()
		c.Next()
	}
}
