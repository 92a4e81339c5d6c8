package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MBARUDI/menthorhub-backend/internal/adapter/http/handlers/mocks"
	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentIntentHandler_CreatePixPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc)

		r := gin.New()
		r.POST("/create-payment", h.CreatePixPayment)

		req := httptest.NewRequest(http.MethodPost, "/create-payment", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payer email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc)

		r := gin.New()
		r.POST("/create-payment", h.CreatePixPayment)

		uc.EXPECT().CreatePixIntent(gomock.Any(), "", "").Return(entities.PaymentIntent{}, usecase.ErrMissingPayerEmail)

		req := httptest.NewRequest(http.MethodPost, "/create-payment", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "payerEmail is required" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("provider failure surfaces provider status and message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc)

		r := gin.New()
		r.POST("/create-payment", h.CreatePixPayment)

		gwErr := &interfaces.GatewayError{StatusCode: http.StatusUnauthorized, Message: "invalid access token"}
		uc.EXPECT().CreatePixIntent(gomock.Any(), "a@x.com", "Ana").Return(entities.PaymentIntent{}, gwErr)

		req := httptest.NewRequest(http.MethodPost, "/create-payment", bytes.NewBufferString(`{"payerEmail":"a@x.com","payerName":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "invalid access token" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc)

		r := gin.New()
		r.POST("/create-payment", h.CreatePixPayment)

		uc.EXPECT().CreatePixIntent(gomock.Any(), "a@x.com", "Ana").Return(entities.PaymentIntent{
			ID:           "123",
			Status:       entities.PaymentStatusPending,
			QRCode:       "Q",
			QRCodeBase64: "B",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/create-payment", bytes.NewBufferString(`{"payerEmail":"a@x.com","payerName":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "123" || body["qr_code"] != "Q" || body["qr_code_base64"] != "B" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentIntentHandler_ProcessCardPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing installments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc)

		r := gin.New()
		r.POST("/process-card-payment", h.ProcessCardPayment)

		uc.EXPECT().ProcessCardPayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, usecase.ErrInvalidCardPayment)

		req := httptest.NewRequest(http.MethodPost, "/process-card-payment", bytes.NewBufferString(`{"token":"tok-1","transaction_amount":19.9,"payer":{"email":"a@x.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc)

		r := gin.New()
		r.POST("/process-card-payment", h.ProcessCardPayment)

		uc.EXPECT().ProcessCardPayment(gomock.Any(), usecase.CardPaymentInput{
			Token:                "tok-1",
			IssuerID:             "24",
			PaymentMethodID:      "visa",
			TransactionAmount:    19.9,
			Installments:         1,
			PayerEmail:           "a@x.com",
			IdentificationType:   "CPF",
			IdentificationNumber: "12345678909",
		}).Return(entities.PaymentIntent{ID: "456", Status: entities.PaymentStatusApproved, StatusDetail: "accredited"}, nil)

		payload := `{"token":"tok-1","issuer_id":"24","payment_method_id":"visa","transaction_amount":19.9,"installments":1,"payer":{"email":"a@x.com","identification":{"type":"CPF","number":"12345678909"}}}`
		req := httptest.NewRequest(http.MethodPost, "/process-card-payment", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "456" || body["status"] != "approved" || body["status_detail"] != "accredited" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
