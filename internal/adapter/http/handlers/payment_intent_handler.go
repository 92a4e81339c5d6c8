package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/MBARUDI/menthorhub-backend/internal/adapter/http/dto/request"
	response "github.com/MBARUDI/menthorhub-backend/internal/adapter/http/dto/response"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase/interfaces"
	"github.com/MBARUDI/menthorhub-backend/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentIntentHandler handles HTTP requests that start a payment.

type PaymentIntentHandler struct {
	usecase usecase.IPaymentIntentUseCase
}

func NewPaymentIntentHandler(uc usecase.IPaymentIntentUseCase) *PaymentIntentHandler {
	return &PaymentIntentHandler{usecase: uc}
}

// CreatePixPayment handles POST /create-payment.
//
// @Summary  Create a Pix payment intent
// @Accept   json
// @Produce  json
// @Param    payload body request.CreatePixPaymentRequest true "payer data"
// @Success  200 {object} response.PixPaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /create-payment [post]
func (h *PaymentIntentHandler) CreatePixPayment(c *gin.Context) {
	var payload request.CreatePixPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[intent][handler] invalid pix payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	intent, err := h.usecase.CreatePixIntent(c.Request.Context(), payload.ResolvePayerEmail(), payload.PayerName)
	if err != nil {
		log.Printf("[intent][handler] create-pix failed payer_email=%s err=%v", payload.ResolvePayerEmail(), err)
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[intent][handler] create-pix success payment_id=%s", intent.ID)

	c.JSON(http.StatusOK, response.FromPixIntent(intent))
}

// ProcessCardPayment handles POST /process-card-payment.
//
// @Summary  Process a card payment
// @Accept   json
// @Produce  json
// @Param    payload body request.CardPaymentRequest true "card charge data"
// @Success  201 {object} response.CardPaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /process-card-payment [post]
func (h *PaymentIntentHandler) ProcessCardPayment(c *gin.Context) {
	var payload request.CardPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[intent][handler] invalid card payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	in := usecase.CardPaymentInput{
		Token:                payload.Token,
		IssuerID:             payload.IssuerID,
		PaymentMethodID:      payload.PaymentMethodID,
		TransactionAmount:    payload.TransactionAmount,
		Installments:         payload.Installments,
		PayerEmail:           payload.Payer.Email,
		IdentificationType:   payload.Payer.Identification.Type,
		IdentificationNumber: payload.Payer.Identification.Number,
	}

	intent, err := h.usecase.ProcessCardPayment(c.Request.Context(), in)
	if err != nil {
		log.Printf("[intent][handler] process-card failed payer_email=%s err=%v", payload.Payer.Email, err)
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[intent][handler] process-card success payment_id=%s status=%s", intent.ID, intent.Status)

	c.JSON(http.StatusCreated, response.FromCardPayment(intent))
}

func mapPaymentIntentError(err error) *pkg.AppError {
	var gatewayErr *interfaces.GatewayError
	switch {
	case errors.Is(err, usecase.ErrMissingPayerEmail):
		return pkg.NewDomainErrorSimple("MISSING_PAYER_EMAIL", "payerEmail is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCardPayment):
		return pkg.NewDomainErrorSimple("INVALID_CARD_PAYMENT", err.Error(), http.StatusBadRequest)
	case errors.As(err, &gatewayErr):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", gatewayErr.Message, gatewayErr.StatusCode)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
