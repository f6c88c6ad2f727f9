package middleware

import (
	"fieldbook/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const (
	ClientIDHeader  = "X-Client-ID"
	DefaultClientID = "default"
)

// ClientID names the browser a preference belongs to: the X-Client-ID header,
// then the client cookie, then "default".
func ClientID(c *gin.Context) string {
	if id := c.GetHeader(ClientIDHeader); id != "" {
		return id
	}
	if id := cookie.GetClientID(c); id != "" {
		return id
	}
	return DefaultClientID
}
