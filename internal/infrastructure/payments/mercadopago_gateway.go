package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase/interfaces"
	"github.com/MBARUDI/menthorhub-backend/pkg"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements interfaces.IPaymentGateway over the
// official Mercado Pago SDK. Mock mode (PAYMENT_GATEWAY_MOCK /
// MERCADOPAGO_MOCK) serves local runs without credentials; created
// payments are kept in memory so a mock webhook re-check stays
// coherent with what was created.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool

	mu           sync.RWMutex
	mockPayments map[string]entities.ProviderPayment
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if pkg.IsPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, mockPayments: map[string]entities.ProviderPayment{}}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (entities.ProviderPayment, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return entities.ProviderPayment{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.ProviderPayment{}, normalizeGatewayError(err)
	}

	pp := fromPaymentResponse(resp)
	log.Printf("[payment][gateway] create success provider_payment_id=%s provider_status=%s", pp.ID, pp.Status)
	return pp, nil
}

func (g *MercadoPagoGateway) GetPaymentByID(ctx context.Context, id string) (entities.ProviderPayment, error) {
	if g != nil && g.mockMode {
		return g.mockGet(id)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	numericID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		log.Printf("[payment][gateway] invalid payment id %q err=%v", id, err)
		return entities.ProviderPayment{}, &interfaces.GatewayError{StatusCode: http.StatusBadRequest, Message: "invalid payment id"}
	}
	log.Printf("[payment][gateway] get start provider_payment_id=%d", numericID)

	resp, err := g.client.Get(ctx, numericID)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", numericID, err)
		return entities.ProviderPayment{}, normalizeGatewayError(err)
	}

	pp := fromPaymentResponse(resp)
	log.Printf("[payment][gateway] get success provider_payment_id=%s provider_status=%s", pp.ID, pp.Status)
	return pp, nil
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (entities.ProviderPayment, error) {
	log.Printf("[payment][gateway] mock create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		_ = json.Unmarshal(requestPayload, &req)
	}

	pp := entities.ProviderPayment{
		ID:           strconv.FormatInt(time.Now().UTC().UnixNano(), 10),
		Status:       entities.PaymentStatusApproved,
		StatusDetail: "accredited",
	}
	if req.Payer != nil {
		pp.PayerEmail = req.Payer.Email
	}
	if req.PaymentMethodID == string(entities.PaymentMethodPix) {
		pp.QRCode = "mock-qr-code-" + pp.ID
		pp.QRCodeBase64 = "bW9jay1xci1jb2Rl"
	}

	g.mu.Lock()
	g.mockPayments[pp.ID] = pp
	g.mu.Unlock()

	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=%s", pp.ID, pp.Status)
	return pp, nil
}

func (g *MercadoPagoGateway) mockGet(id string) (entities.ProviderPayment, error) {
	g.mu.RLock()
	pp, ok := g.mockPayments[strings.TrimSpace(id)]
	g.mu.RUnlock()
	if !ok {
		log.Printf("[payment][gateway] mock get not-found provider_payment_id=%s", id)
		return entities.ProviderPayment{}, &interfaces.GatewayError{StatusCode: http.StatusNotFound, Message: "payment not found"}
	}
	log.Printf("[payment][gateway] mock get success provider_payment_id=%s provider_status=%s", pp.ID, pp.Status)
	return pp, nil
}

func fromPaymentResponse(resp *payment.Response) entities.ProviderPayment {
	return entities.ProviderPayment{
		ID:           strconv.Itoa(resp.ID),
		Status:       entities.PaymentStatus(resp.Status),
		StatusDetail: resp.StatusDetail,
		PayerEmail:   resp.Payer.Email,
		QRCode:       resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: resp.PointOfInteraction.TransactionData.QRCodeBase64,
	}
}

// normalizeGatewayError extracts the provider's status and message from
// the SDK error. The SDK only exposes API failures through the error
// text, which embeds the provider's JSON body.
func normalizeGatewayError(err error) *interfaces.GatewayError {
	ge := &interfaces.GatewayError{
		StatusCode: http.StatusInternalServerError,
		Message:    "payment provider request failed",
	}
	if err == nil {
		return ge
	}

	msg := err.Error()
	if i := strings.Index(msg, "{"); i >= 0 {
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
			Status  int    `json:"status"`
		}
		if jsonErr := json.Unmarshal([]byte(msg[i:]), &body); jsonErr == nil {
			if body.Status >= 400 && body.Status <= 599 {
				ge.StatusCode = body.Status
			}
			if m := strings.TrimSpace(body.Message); m != "" {
				ge.Message = m
			} else if m := strings.TrimSpace(body.Error); m != "" {
				ge.Message = m
			}
		}
	}
	return ge
}
