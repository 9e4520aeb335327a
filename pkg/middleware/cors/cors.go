package cors

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nadeen-odeh/dept-assistant-api/pkg/config"
)

// New builds the CORS middleware from config. An empty origin list, or a
// "*" entry, allows every origin; the chat widget is embedded on
// department pages whose hosts are not known at build time.
func New(cfg config.CORSConfig) gin.HandlerFunc {
	allowAll := len(cfg.AllowedOrigins) == 0
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[normalizeOrigin(origin)] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case origin == "" && allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		case origin != "":
			if _, ok := allowed[normalizeOrigin(origin)]; ok {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			}
		}

		c.Writer.Header().Set("Vary", "Origin")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Max-Age", "600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func normalizeOrigin(origin string) string {
	return strings.ToLower(strings.TrimRight(origin, "/"))
}
