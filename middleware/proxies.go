package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TrustProxies limits which peers may set X-Forwarded-For / X-Real-IP.
// proxies is a comma-separated list of IPs or CIDRs; empty trusts no one, so
// c.ClientIP() is the socket peer.
func TrustProxies(r *gin.Engine, proxies string) error {
	var list []string
	for _, p := range strings.Split(proxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return r.SetTrustedProxies(list)
}
