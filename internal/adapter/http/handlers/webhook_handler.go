package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

const webhookProcessTimeout = 30 * time.Second

// WebhookHandler receives Mercado Pago notifications.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleMercadoPago handles POST /webhooks/mercadopago.
//
// The response is always 200 "OK" and carries no information about the
// outcome: Mercado Pago must see a fast ack or it retry-storms, and the
// status-check-and-grant sequence may be slower than its delivery
// timeout. Processing continues on a detached context after the
// response is written; errors are visible in operator logs only.
//
// @Summary  Mercado Pago webhook
// @Accept   json
// @Produce  plain
// @Success  200 {string} string "OK"
// @Router   /webhooks/mercadopago [post]
func (h *WebhookHandler) HandleMercadoPago(c *gin.Context) {
	var n entities.WebhookNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		log.Printf("[webhook][handler] malformed notification body err=%v", err)
		c.String(http.StatusOK, "OK")
		return
	}

	c.String(http.StatusOK, "OK")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), webhookProcessTimeout)
		defer cancel()

		outcome, err := h.usecase.ProcessNotification(ctx, n)
		if err != nil {
			log.Printf("[webhook][handler] processing failed type=%s payment_id=%s outcome=%s err=%v", n.Type, n.Data.ID, outcome, err)
			return
		}
		log.Printf("[webhook][handler] processing done type=%s payment_id=%s outcome=%s", n.Type, n.Data.ID, outcome)
	}()
}
