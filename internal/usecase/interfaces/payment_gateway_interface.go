package interfaces

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePayment receives the request body as raw JSON so the use case
// layer can build provider payloads without depending on SDK types.
// GetPaymentByID re-fetches a payment during webhook processing; the
// returned ProviderPayment is the only trusted source for its status.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (entities.ProviderPayment, error)
	GetPaymentByID(ctx context.Context, id string) (entities.ProviderPayment, error)
}

// GatewayError is the normalized provider failure: the provider's own
// status code when it sent one (500 otherwise) and its diagnostic
// message when present, so callers can surface a meaningful reason
// without leaking raw SDK errors.

type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error (status %d): %s", e.StatusCode, e.Message)
}
