package response

import "github.com/MBARUDI/menthorhub-backend/internal/domain/entities"

// PixPaymentResponse is the artifact the client needs to complete a
// Pix payment.

type PixPaymentResponse struct {
	ID           string `json:"id"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
}

func FromPixIntent(p entities.PaymentIntent) PixPaymentResponse {
	return PixPaymentResponse{
		ID:           p.ID,
		QRCode:       p.QRCode,
		QRCodeBase64: p.QRCodeBase64,
	}
}

// CardPaymentResponse carries the charge result for a card payment.

type CardPaymentResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	StatusDetail string `json:"status_detail"`
}

func FromCardPayment(p entities.PaymentIntent) CardPaymentResponse {
	return CardPaymentResponse{
		ID:           p.ID,
		Status:       string(p.Status),
		StatusDetail: p.StatusDetail,
	}
}
