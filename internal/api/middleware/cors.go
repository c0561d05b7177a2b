package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func ConfigCORS(allowedCORSDomains string) gin.HandlerFunc {
	domains := strings.Split(allowedCORSDomains, ",")
	for i, domain := range domains {
		domains[i] = strings.TrimSpace(domain)
	}

	conf := cors.DefaultConfig()
	conf.AllowOrigins = domains

	return cors.New(conf)
}
