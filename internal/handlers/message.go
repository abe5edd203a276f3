package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"shop_backend/internal/logging"
	"shop_backend/internal/models"
	"shop_backend/internal/mykafka"

	mwauth "shop_backend/internal/middleware/auth"
)

type MessageHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

// GetAll lists every message with its author. The route is admin-gated;
// room-scoped listing would reuse the same owner-or-admin rule with the room
// membership as owner.
func (h *MessageHandler) GetAll(c echo.Context) error {
	var messages []models.Message
	if err := h.DB.Preload("User").Order("id ASC").Find(&messages).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "message.create")

	claims := mwauth.Identity(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req struct {
		Message string `json:"message"`
		RoomID  uint   `json:"roomId"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_message_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message required")
	}

	msg := models.Message{
		Message: req.Message,
		RoomID:  req.RoomID,
		UserID:  claims.ID,
	}
	if err := h.DB.Create(&msg).Error; err != nil {
		l.Error("create_message_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	pubCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(pubCtx, "message_events", fmt.Sprint(msg.ID), map[string]interface{}{
		"type":      "message_created",
		"messageID": msg.ID,
		"roomID":    msg.RoomID,
		"userID":    msg.UserID,
	}); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}

	l.Info("create_message_success", "message_id", msg.ID)
	return c.JSON(http.StatusCreated, msg)
}
