package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the portfolio front end to post to the API from
// another origin. "*" allows every origin; entries that are not http(s)
// origins are ignored. No credentials are involved.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", HeaderRequestID}
	cfg.ExposeHeaders = []string{HeaderRequestID}
	cfg.MaxAge = 24 * time.Hour

	var origins []string
	for _, origin := range allowedOrigins {
		switch {
		case origin == "*":
			cfg.AllowAllOrigins = true
		case strings.HasPrefix(origin, "http://"), strings.HasPrefix(origin, "https://"):
			origins = append(origins, origin)
		}
	}

	if !cfg.AllowAllOrigins {
		if len(origins) == 0 {
			// cors.New rejects an empty allow list; same-origin requests
			// carry no Origin header and are unaffected.
			origins = []string{"http://localhost"}
		}
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
