// Package flash implements the read-once flash-message store consumed
// by the presentation layer: a message set during one request is
// returned once on a later read and then cleared.
package flash

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

// Set stores a flash message of the given kind ("success" or "error").
func Set(c *gin.Context, kind, message string) {
	value := url.QueryEscape(kind + "|" + message)
	c.SetCookie(cookieName, value, 300, "/", "", false, true)
}

// Take returns the pending flash message, clearing it so a second read
// finds nothing.
func Take(c *gin.Context) (kind, message string, ok bool) {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return "", "", false
	}

	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", "", false
	}

	parts := strings.SplitN(decoded, "|", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
