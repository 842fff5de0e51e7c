package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/noshahi-devs/notification-service/internal/db"
	"github.com/noshahi-devs/notification-service/internal/engine"
	"github.com/noshahi-devs/notification-service/internal/models"
	"github.com/noshahi-devs/notification-service/internal/monitor"
)

type Handler struct {
	db     *db.DB
	logger *logrus.Logger
	engine *engine.Engine
	hub    *monitor.Hub
}

func NewHandler(db *db.DB, logger *logrus.Logger, eng *engine.Engine, hub *monitor.Hub) *Handler {
	return &Handler{db: db, logger: logger, engine: eng, hub: hub}
}

// eventSendRequest is the payload for event-driven sends.
type eventSendRequest struct {
	Event          models.NotificationEvent `json:"event" binding:"required"`
	RecipientEmail string                   `json:"recipient_email" binding:"required,email"`
	RecipientName  string                   `json:"recipient_name"`
	Data           map[string]string        `json:"data"`
}

func (h *Handler) SendNotification(c *gin.Context) {
	var req eventSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Invalid notification request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !models.IsValidEvent(req.Event) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown notification event"})
		return
	}

	res := h.engine.SendNotification(c.Request.Context(), req.Event, req.RecipientEmail, req.RecipientName, req.Data)
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}
	c.JSON(http.StatusBadRequest, res)
}

func (h *Handler) SendCustom(c *gin.Context) {
	var req models.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Invalid custom send request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var res models.SendResult
	if template := c.Query("template"); template != "" {
		res = h.engine.SendTemplated(c.Request.Context(), req, template)
	} else {
		res = h.engine.Send(c.Request.Context(), req)
	}
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}
	c.JSON(http.StatusBadRequest, res)
}

func (h *Handler) SendBulk(c *gin.Context) {
	var requests []models.SendRequest
	if err := c.ShouldBindJSON(&requests); err != nil {
		h.logger.Errorf("Invalid bulk send request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(requests) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty request list"})
		return
	}

	allSucceeded := h.engine.SendBulk(c.Request.Context(), requests)
	c.JSON(http.StatusOK, gin.H{"all_succeeded": allSucceeded, "count": len(requests)})
}

func (h *Handler) TestConnection(c *gin.Context) {
	res := h.engine.TestConnection(c.Request.Context())
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetDeliveryLogs(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	logs, err := h.db.ListRecentDeliveryLogs(c.Request.Context(), limit)
	if err != nil {
		h.logger.Errorf("Failed to list delivery logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get delivery logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
