package entities

// PaymentStatus mirrors the Mercado Pago payment status values the
// service cares about. Any other provider value is carried through
// untouched; only PaymentStatusApproved ever triggers an entitlement
// grant.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusInProcess PaymentStatus = "in_process"
)

// PaymentMethod identifies how the payer completes the payment.

type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "card"
)

// PaymentIntent is what the client needs to complete a payment it just
// requested. Pix intents carry the QR fields; card intents carry
// status/status_detail and nothing else.

type PaymentIntent struct {
	ID           string        `json:"id"`
	Status       PaymentStatus `json:"status,omitempty"`
	StatusDetail string        `json:"status_detail,omitempty"`
	QRCode       string        `json:"qr_code,omitempty"`
	QRCodeBase64 string        `json:"qr_code_base64,omitempty"`
}

// ProviderPayment is the authoritative view of a payment as returned by
// Mercado Pago itself, either on creation or on a get-by-id re-fetch.
// During webhook processing this is the only trusted source for status
// and payer identity.

type ProviderPayment struct {
	ID           string
	Status       PaymentStatus
	StatusDetail string
	PayerEmail   string
	QRCode       string
	QRCodeBase64 string
}

// WebhookNotificationData carries the payment id the notification is
// about.

type WebhookNotificationData struct {
	ID string `json:"id"`
}

// WebhookNotification is the body Mercado Pago posts to the webhook
// endpoint. It is untrusted: only Data.ID is used, and only to decide
// which payment to re-fetch from the provider.

type WebhookNotification struct {
	Type     string                  `json:"type"`
	Action   string                  `json:"action,omitempty"`
	LiveMode bool                    `json:"live_mode,omitempty"`
	Data     WebhookNotificationData `json:"data"`
}
