package request

import "strings"

// CreatePixPaymentRequest is the body for POST /create-payment. Field
// names follow the site's checkout script.

type CreatePixPaymentRequest struct {
	PayerEmail string `json:"payerEmail"`
	PayerName  string `json:"payerName"`
}

func (r CreatePixPaymentRequest) ResolvePayerEmail() string {
	return strings.TrimSpace(r.PayerEmail)
}

// CardPaymentRequest is the body for POST /process-card-payment,
// matching what the Mercado Pago card brick submits.

type CardPaymentRequest struct {
	Token             string          `json:"token"`
	IssuerID          string          `json:"issuer_id"`
	PaymentMethodID   string          `json:"payment_method_id"`
	TransactionAmount float64         `json:"transaction_amount"`
	Installments      int             `json:"installments"`
	Payer             CardPayerFields `json:"payer"`
}

type CardPayerFields struct {
	Email          string               `json:"email"`
	Identification IdentificationFields `json:"identification"`
}

type IdentificationFields struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}
