package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase/interfaces"
)

var (
	ErrMissingPayerEmail  = errors.New("missing payer email")
	ErrInvalidCardPayment = errors.New("invalid card payment request")
)

const defaultPayerName = "Cliente"

// IPaymentIntentUseCase creates payment intents against the provider.
//
// Pix intents always charge the configured product price; the caller
// never supplies an amount, which rules out client-side price
// tampering. Card intents charge the caller-supplied amount.

type IPaymentIntentUseCase interface {
	CreatePixIntent(ctx context.Context, payerEmail, payerName string) (entities.PaymentIntent, error)
	ProcessCardPayment(ctx context.Context, in CardPaymentInput) (entities.PaymentIntent, error)
}

// CardPaymentInput carries the fields the checkout brick produces for a
// card charge.

type CardPaymentInput struct {
	Token                string
	IssuerID             string
	PaymentMethodID      string
	TransactionAmount    float64
	Installments         int
	PayerEmail           string
	IdentificationType   string
	IdentificationNumber string
}

// PaymentIntentConfig is the slice of process configuration the intent
// flow needs, injected at wiring time.

type PaymentIntentConfig struct {
	PixAmount       float64
	PixDescription  string
	NotificationURL string
}

type PaymentIntentUseCase struct {
	gateway interfaces.IPaymentGateway
	cfg     PaymentIntentConfig
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(gateway interfaces.IPaymentGateway, cfg PaymentIntentConfig) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{gateway: gateway, cfg: cfg}
}

// payloads sent to the gateway; json tags follow the Mercado Pago
// payments API field names.

type paymentPayload struct {
	TransactionAmount float64             `json:"transaction_amount"`
	Description       string              `json:"description"`
	PaymentMethodID   string              `json:"payment_method_id"`
	NotificationURL   string              `json:"notification_url"`
	Token             string              `json:"token,omitempty"`
	IssuerID          string              `json:"issuer_id,omitempty"`
	Installments      int                 `json:"installments,omitempty"`
	Payer             paymentPayloadPayer `json:"payer"`
}

type paymentPayloadPayer struct {
	Email          string                 `json:"email"`
	FirstName      string                 `json:"first_name,omitempty"`
	Identification *payloadIdentification `json:"identification,omitempty"`
}

type payloadIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

func (u *PaymentIntentUseCase) CreatePixIntent(ctx context.Context, payerEmail, payerName string) (entities.PaymentIntent, error) {
	payerEmail = strings.TrimSpace(payerEmail)
	log.Printf("[intent][usecase] create-pix start payer_email=%s", payerEmail)
	if payerEmail == "" {
		log.Printf("[intent][usecase] missing payer email")
		return entities.PaymentIntent{}, ErrMissingPayerEmail
	}
	if u.gateway == nil {
		log.Printf("[intent][usecase] gateway not configured")
		return entities.PaymentIntent{}, errors.New("payment gateway not configured")
	}

	payerName = strings.TrimSpace(payerName)
	if payerName == "" {
		payerName = defaultPayerName
	}

	payload := paymentPayload{
		TransactionAmount: u.cfg.PixAmount,
		Description:       u.cfg.PixDescription,
		PaymentMethodID:   string(entities.PaymentMethodPix),
		NotificationURL:   u.cfg.NotificationURL,
		Payer:             paymentPayloadPayer{Email: payerEmail, FirstName: payerName},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	pp, err := u.gateway.CreatePayment(ctx, b)
	if err != nil {
		log.Printf("[intent][usecase] create-pix gateway failed payer_email=%s err=%v", payerEmail, err)
		return entities.PaymentIntent{}, err
	}
	log.Printf("[intent][usecase] create-pix success payer_email=%s provider_payment_id=%s status=%s", payerEmail, pp.ID, pp.Status)

	return entities.PaymentIntent{
		ID:           pp.ID,
		Status:       pp.Status,
		QRCode:       pp.QRCode,
		QRCodeBase64: pp.QRCodeBase64,
	}, nil
}

func (u *PaymentIntentUseCase) ProcessCardPayment(ctx context.Context, in CardPaymentInput) (entities.PaymentIntent, error) {
	log.Printf("[intent][usecase] process-card start payer_email=%s installments=%d", in.PayerEmail, in.Installments)
	if err := validateCardPayment(in); err != nil {
		log.Printf("[intent][usecase] invalid card payment err=%v", err)
		return entities.PaymentIntent{}, err
	}
	if u.gateway == nil {
		log.Printf("[intent][usecase] gateway not configured")
		return entities.PaymentIntent{}, errors.New("payment gateway not configured")
	}

	payload := paymentPayload{
		TransactionAmount: in.TransactionAmount,
		Description:       u.cfg.PixDescription,
		PaymentMethodID:   in.PaymentMethodID,
		NotificationURL:   u.cfg.NotificationURL,
		Token:             in.Token,
		IssuerID:          in.IssuerID,
		Installments:      in.Installments,
		Payer: paymentPayloadPayer{
			Email: strings.TrimSpace(in.PayerEmail),
			Identification: &payloadIdentification{
				Type:   in.IdentificationType,
				Number: in.IdentificationNumber,
			},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	pp, err := u.gateway.CreatePayment(ctx, b)
	if err != nil {
		log.Printf("[intent][usecase] process-card gateway failed payer_email=%s err=%v", in.PayerEmail, err)
		return entities.PaymentIntent{}, err
	}
	log.Printf("[intent][usecase] process-card success payer_email=%s provider_payment_id=%s status=%s detail=%s", in.PayerEmail, pp.ID, pp.Status, pp.StatusDetail)

	return entities.PaymentIntent{
		ID:           pp.ID,
		Status:       pp.Status,
		StatusDetail: pp.StatusDetail,
	}, nil
}

func validateCardPayment(in CardPaymentInput) error {
	switch {
	case strings.TrimSpace(in.Token) == "":
		return fmt.Errorf("%w: missing card token", ErrInvalidCardPayment)
	case in.TransactionAmount <= 0:
		return fmt.Errorf("%w: missing transaction_amount", ErrInvalidCardPayment)
	case in.Installments <= 0:
		return fmt.Errorf("%w: missing installments", ErrInvalidCardPayment)
	case strings.TrimSpace(in.PayerEmail) == "":
		return fmt.Errorf("%w: missing payer email", ErrInvalidCardPayment)
	}
	return nil
}
