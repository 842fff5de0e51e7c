package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/noshahi-devs/notification-service/internal/config"
	"github.com/noshahi-devs/notification-service/internal/db"
	"github.com/noshahi-devs/notification-service/internal/engine"
	"github.com/noshahi-devs/notification-service/internal/monitor"
)

func NewRouter(dbConn *db.DB, logger *logrus.Logger, cfg config.Config, eng *engine.Engine, hub *monitor.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLoggingMiddleware(logger))

	h := NewHandler(dbConn, logger, eng, hub)
	api := r.Group(cfg.API.BasePath)
	{
		api.POST("/notifications/send", h.SendNotification)
		api.POST("/notifications/send-custom", h.SendCustom)
		api.POST("/notifications/send-bulk", h.SendBulk)
		api.POST("/notifications/test-connection", h.TestConnection)
		api.GET("/notifications/logs", h.GetDeliveryLogs)
	}

	r.GET("/ws/notifications", h.MonitorSocket)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
