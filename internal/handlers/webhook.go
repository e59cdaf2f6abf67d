package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"lingua-exam-backend/internal/webhooklog"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	log *webhooklog.Log
}

func NewWebhookHandler(log *webhooklog.Log) *WebhookHandler {
	return &WebhookHandler{log: log}
}

// ReceiveWebhook godoc
// @Summary      Receive an inbound webhook
// @Description  Captures the delivery in a bounded in-memory log for inspection. The payload must be JSON.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        source path string true "Webhook source tag"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /webhook/inbound/{source} [post]
func (h *WebhookHandler) ReceiveWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read body"})
		return
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "payload must be valid JSON"})
		return
	}

	h.log.Append(webhooklog.Entry{
		Source:     c.Param("source"),
		ReceivedAt: time.Now(),
		Payload:    json.RawMessage(body),
	})

	c.JSON(http.StatusOK, MessageResponse{Message: "received"})
}

// GetWebhookLog godoc
// @Summary      List recent webhook deliveries
// @Tags         webhooks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} webhooklog.Entry
// @Router       /api/v1/webhook-log [get]
func (h *WebhookHandler) GetWebhookLog(c *gin.Context) {
	c.JSON(http.StatusOK, h.log.Recent())
}
