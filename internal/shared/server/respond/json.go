package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListBody is the envelope for collection responses.
type ListBody[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// List writes a 200 collection response. A nil slice is sent as [].
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	OK(c, ListBody[T]{Items: items, Total: len(items)})
}

// NoContent writes a bodyless 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
