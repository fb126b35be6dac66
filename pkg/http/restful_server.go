package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/footfall"
	"liyu1981.xyz/footfall-service/pkg/metrics"
)

const ContextKeyAccountID = "account_id"

type RestfulServer struct {
	Server           *gin.Engine
	Footfall         *footfall.Footfall
	RateLimiterStore *footfall.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(storeID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(storeID)
	}
}

func (rs *RestfulServer) CheckStoreLimiter(storeID string) bool {
	limiter := rs.GetLimiter(storeID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(storeID string, storeRate float64, storeBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(storeID, rate.Limit(storeRate), storeBurst)
}

// AccountAuth trusts the opaque account identity supplied by the
// upstream authentication layer; requests without one are rejected.
func AccountAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := strings.TrimSpace(c.GetHeader(common.HeaderAccountID))
		if accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing account identity"})
			return
		}
		c.Set(ContextKeyAccountID, accountID)
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(metrics.Handler()))

	stores := rs.Server.Group("/stores", AccountAuth())
	{
		stores.POST("", rs.CreateStore)
		stores.GET("", rs.ListStores)

		store := stores.Group("/:store_id")
		{
			store.GET("", rs.GetStore)
			store.DELETE("", rs.DeleteStore)
			store.POST("/config", rs.UpdateConfig)
			store.POST("/limiter", rs.PostLimiter)

			store.POST("/footfall", rs.PostFootfall)
			store.GET("/footfall/current", rs.GetCurrentStats)
			store.GET("/footfall/history", rs.GetHistory)
			store.GET("/footfall/analytics", rs.GetAnalytics)

			store.GET("/alerts", rs.GetAlerts)
			store.POST("/alerts/:alert_id/acknowledge", rs.AcknowledgeAlert)
			store.POST("/alerts/:alert_id/resolve", rs.ResolveAlert)
		}
	}
}
