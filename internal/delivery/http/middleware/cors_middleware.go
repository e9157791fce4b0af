package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var devOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
}

// CORSMiddleware allows the configured front-end origins to call the API
// with credentials. Local development origins are only added outside
// production.
func CORSMiddleware(allowedOrigins []string, isProduction bool) gin.HandlerFunc {
	origins := append([]string(nil), allowedOrigins...)
	if !isProduction {
		origins = append(origins, devOrigins...)
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = origins
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{
		"Origin", "Content-Length", "Content-Type", "Authorization",
		CSRFTokenHeaderName, RequestIDHeader, "Cache-Control", "X-Requested-With",
	}
	config.ExposeHeaders = []string{RequestIDHeader, "Content-Disposition", "X-RateLimit-Remaining", "Retry-After"}
	config.MaxAge = 24 * time.Hour

	return cors.New(config)
}
