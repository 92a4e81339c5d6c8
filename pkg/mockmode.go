package pkg

import (
	"os"
	"strings"
)

// IsPaymentGatewayMockEnabled reports whether the process should run
// against the in-memory payment gateway instead of Mercado Pago. Both
// config validation and the gateway constructor consult this.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
