package routes

import (
	"net/http"

	"backpedidos/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// addRootRoutes exposes the banner and the liveness probe used by the
// platform. /health goes 503 when the database does not answer.
func addRootRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "backpedidos", "status": "ok"})
	})
	r.GET("/health", func(c *gin.Context) {
		if !database.Healthcheck(c.Request.Context(), pool) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": true})
	})
}
