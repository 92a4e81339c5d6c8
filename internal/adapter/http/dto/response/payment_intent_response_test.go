package response

import (
	"testing"

	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
)

func TestFromPixIntent(t *testing.T) {
	got := FromPixIntent(entities.PaymentIntent{
		ID:           "123",
		Status:       entities.PaymentStatusPending,
		QRCode:       "Q",
		QRCodeBase64: "B",
	})
	if got.ID != "123" || got.QRCode != "Q" || got.QRCodeBase64 != "B" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestFromCardPayment(t *testing.T) {
	got := FromCardPayment(entities.PaymentIntent{
		ID:           "456",
		Status:       entities.PaymentStatusApproved,
		StatusDetail: "accredited",
	})
	if got.ID != "456" || got.Status != "approved" || got.StatusDetail != "accredited" {
		t.Fatalf("unexpected response: %+v", got)
	}
}
