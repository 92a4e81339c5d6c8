package routes

import (
	"github.com/MBARUDI/menthorhub-backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreatePayment      = "/create-payment"
	PathProcessCardPayment = "/process-card-payment"
	PathMercadoPagoWebhook = "/webhooks/mercadopago"
)

func addPaymentRoutes(rg *gin.RouterGroup, intentHandler *handlers.PaymentIntentHandler, webhookHandler *handlers.WebhookHandler) {
	rg.POST(PathCreatePayment, intentHandler.CreatePixPayment)
	rg.POST(PathProcessCardPayment, intentHandler.ProcessCardPayment)

	// Mercado Pago posts here asynchronously; see WebhookHandler.
	rg.POST(PathMercadoPagoWebhook, webhookHandler.HandleMercadoPago)
}
