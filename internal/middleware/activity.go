package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/service"
)

// ActivityMiddleware 任何业务API请求都算一次活跃，驱动连续打卡天数。
// 探活和指标端点不算
func ActivityMiddleware(stats *service.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			stats.Touch()
		}
		c.Next()
	}
}
