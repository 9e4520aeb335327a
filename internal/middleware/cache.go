package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	metaContextKey = "responseMeta"

	// Meta keys surface in the response envelope's meta object, so they
	// follow the API's camelCase field convention.
	metaCacheHit       = "cacheHit"
	metaProcessingTime = "processingTimeMs"
)

// WithResponseMeta initialises per-request response metadata and stamps the
// total processing time once the chain finishes. The suggest and timetable
// handlers add their cache-hit flag to the same map.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(metaContextKey, map[string]interface{}{})
		c.Next()
		meta := ensureMeta(c)
		if _, exists := meta[metaProcessingTime]; !exists {
			meta[metaProcessingTime] = time.Since(start).Milliseconds()
		}
	}
}

// SetCacheHit records whether the response was served from the cache.
func SetCacheHit(c *gin.Context, hit bool) {
	ensureMeta(c)[metaCacheHit] = hit
}

// ExtractMeta returns the metadata map stored on the context, nil when the
// request never went through WithResponseMeta.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if meta, exists := c.Get(metaContextKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	return nil
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return map[string]interface{}{}
	}
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	meta := make(map[string]interface{})
	c.Set(metaContextKey, meta)
	return meta
}
